package types

type Book struct {
	Id     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	IsRead bool   `json:"is_read"`
	// Rating is documented as 1-5 but not enforced.
	Rating int    `json:"rating"`
	Cover  string `json:"cover_key"`
}
