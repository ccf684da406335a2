//go:build unit

package middleware

func LimiterCount(r *RateLimiter) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}
