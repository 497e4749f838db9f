package domain

// PermAll grants every admin action
const PermAll = "all"

// Admin is an entry in the admin registry
type Admin struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Perms []string `json:"perms"`
}

// AdminRegistry is the persisted admins document
type AdminRegistry struct {
	Admins []Admin `json:"admins"`
}

// Contains reports whether id is registered
func (r AdminRegistry) Contains(id int64) bool {
	for _, a := range r.Admins {
		if a.ID == id {
			return true
		}
	}
	return false
}
