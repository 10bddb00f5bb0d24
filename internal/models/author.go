package models

// Author is the blog owner profile. Exactly one instance exists per process;
// writing a new one replaces it wholesale.
type Author struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	Certification string `json:"certification"`
	ImageURL      string `json:"imageUrl,omitempty"`
	LinkedinURL   string `json:"linkedinUrl,omitempty"`
	GithubURL     string `json:"githubUrl,omitempty"`
	TwitterURL    string `json:"twitterUrl,omitempty"`
}

func (a *Author) Clone() *Author {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}
