package booking

// ProductMeta is one entry of a WooCommerce product's meta_data array.
// Value is whatever the store returned: string, number, object or list.
type ProductMeta struct {
	Key   string
	Value any
}

type Product struct {
	ID           int
	Name         string
	Price        string
	RegularPrice string
	MetaData     []ProductMeta
}

func (p *Product) Meta(key string) (any, bool) {
	for _, m := range p.MetaData {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}
