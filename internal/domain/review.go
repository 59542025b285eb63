package domain

// Review is the only persisted entity. ID and Date are server-assigned;
// whatever the caller sends for them is discarded on append.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
	Service string `json:"service"`
	Date    string `json:"date"`
}
