package models

type Blog struct {
	Id     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Url    string `json:"url"`
	Likes  int    `json:"likes"`
}

// Apply copies every non-nil field of patch onto b.
func (b *Blog) Apply(patch BlogPatch) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Url != nil {
		b.Url = *patch.Url
	}
	if patch.Likes != nil {
		b.Likes = *patch.Likes
	}
}

type BlogPatch struct {
	Title  *string
	Author *string
	Url    *string
	Likes  *int
}

func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Url == nil && p.Likes == nil
}
