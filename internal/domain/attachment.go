package domain

// Image is a stored image reference as the upstream API returns it
// (Cloudinary-style link plus storage id).
type Image struct {
	ImageLink string `json:"imageLink"`
	PublicID  string `json:"public_id"`
}

// CVFile is an uploaded CV reference on an application.
type CVFile struct {
	FileURL  string `json:"fileUrl"`
	PublicID string `json:"public_id"`
}

// Upload is a locally selected file that has not been sent anywhere yet. It
// is carried inside a draft and only leaves the process as a multipart part
// on submit.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}
