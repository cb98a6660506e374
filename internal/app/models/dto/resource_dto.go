package dto

// CreateResourceRequest carries the upload form fields. The optional PDF
// travels separately as the "pdfFile" multipart field.
type CreateResourceRequest struct {
	Title      string `form:"title" json:"title"`
	Subject    string `form:"subject" json:"subject"`
	Type       string `form:"type" json:"type"`
	Branch     string `form:"branch" json:"branch"`
	Year       string `form:"year" json:"year"`
	Semester   string `form:"semester" json:"semester"`
	ExamType   string `form:"examType" json:"examType"`
	Regulation string `form:"regulation" json:"regulation"`
	FileURL    string `form:"fileUrl" json:"fileUrl"`
	Size       string `form:"size" json:"size"`
	Uploader   string `form:"uploader" json:"uploader"`
	Rating     string `form:"rating" json:"rating"`
}
