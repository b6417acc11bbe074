package models

// Mode selects which document the generation service produces
type Mode string

const (
	ModeResume      Mode = "resume"
	ModeCoverLetter Mode = "cover-letter"
)

// IsResume reports whether the mode routes to the resume endpoint.
// Every other value, including empty, is a cover letter.
func (m Mode) IsResume() bool {
	return m == ModeResume
}

// Title is the document title used for download names and labels
func (m Mode) Title() string {
	if m.IsResume() {
		return "Resume"
	}
	return "Cover Letter"
}

// OutputType is the response format requested from the generation service
type OutputType string

const (
	OutputText OutputType = "text"
	OutputPDF  OutputType = "pdf"
)

// IsBinary reports whether the output is delivered as a downloadable file
func (o OutputType) IsBinary() bool {
	return o == OutputPDF
}

// Profile represents the biographical fields entered on the form
type Profile struct {
	Name       string `json:"name" form:"name"`
	Contact    string `json:"contact" form:"contact"`
	Education  string `json:"education" form:"education"`
	Skills     string `json:"skills" form:"skills"`
	Experience string `json:"experience" form:"experience"`
}

// SubmissionForm represents the data structure coming from the generation form.
// Fields are unconstrained; empty values are passed to the service as-is.
type SubmissionForm struct {
	Profile
	JobDesc    string `form:"jobDesc"`
	Mode       string `form:"mode"`
	OutputType string `form:"output"`
}

// Submission is one form submission as read at trigger time
type Submission struct {
	Profile    Profile
	JobDesc    string
	Mode       Mode
	OutputType OutputType
}

// ToSubmission converts the bound form into a Submission
func (f SubmissionForm) ToSubmission() Submission {
	return Submission{
		Profile:    f.Profile,
		JobDesc:    f.JobDesc,
		Mode:       Mode(f.Mode),
		OutputType: OutputType(f.OutputType),
	}
}

// GenerationRequest is the JSON body sent to the generation service
type GenerationRequest struct {
	Profile    Profile `json:"profile"`
	JobDesc    string  `json:"jobDesc"`
	OutputType string  `json:"outputType"`
}

// NewGenerationRequest builds the request body for a submission
func NewGenerationRequest(s Submission) GenerationRequest {
	return GenerationRequest{
		Profile:    s.Profile,
		JobDesc:    s.JobDesc,
		OutputType: string(s.OutputType),
	}
}

// GenerationText is the success body for text output
type GenerationText struct {
	Text *string `json:"text"`
}
