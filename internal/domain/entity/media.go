package entity

// Media represents a media outlet.
// The (Title, Username) pair identifies a Media and must be unique.
type Media struct {
	ID       int64
	Title    string
	Username string
}

// SameIdentity reports whether m carries the given title/username pair.
func (m *Media) SameIdentity(title, username string) bool {
	return m.Title == title && m.Username == username
}
