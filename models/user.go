package models

type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Address  *Address `json:"address,omitempty"`
}

// Address is the shipping address kept on the upstream user record.
type Address struct {
	AddressDetail string `json:"addressDetail"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// Line formats the address the way orders carry it.
func (a Address) Line() string {
	return a.AddressDetail + ", " + a.City + ", " + a.Country
}

// Public strips credentials before the user record leaves the service.
func (u User) Public() User {
	u.Password = ""
	return u
}
