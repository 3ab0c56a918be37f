package entity

// TutorProfile is owned by the downstream tutor profile service. The
// registration flow creates one remotely and keeps only the assigned TutorID
// locally; the remaining fields are echoed back by the service.
type TutorProfile struct {
	TutorID  int32  // Identifier assigned by the profile service.
	Name     string // The tutor's display name.
	ImageURL string // URL of the tutor's profile picture.
	Profile  string // Free-form profile text.
}
