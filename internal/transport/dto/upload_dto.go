// internal/transport/dto/upload_dto.go
package dto

// UploadResponse is returned after a successful CV upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	CvURL    string `json:"cvUrl"`
	FileName string `json:"fileName"`
}
