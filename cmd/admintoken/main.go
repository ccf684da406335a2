// Command admintoken mints a signed admin token for the debug routes
// (bookings/debug through the proxy and /api/debug/woocommerce-auth).
package main

import (
	"flag"
	"fmt"
	"os"

	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "operator", "token subject, shows up in access logs")
	flag.Parse()

	cfg, err := config.LoadAdminConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	svc := jwt.NewService(cfg.JWTSecret, cfg.TokenDuration)
	if !svc.Enabled() {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := svc.GenerateToken(*subject, jwt.RoleAdmin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
