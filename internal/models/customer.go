package models

// Customer is a normalized customer row.
type Customer struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Address string            `json:"address"`
	Phone   string            `json:"phone"`
	Email   string            `json:"email"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// IdentityKey returns the (id, name, address, phone, email) tuple used to count unique customers.
func (c Customer) IdentityKey() [5]string {
	return [5]string{c.ID, c.Name, c.Address, c.Phone, c.Email}
}
