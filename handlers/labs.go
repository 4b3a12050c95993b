// File: handlers/labs.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"healthverse/services/labs"

	"github.com/gin-gonic/gin"
)

const maxReportSize = 10 * 1024 * 1024 // 10MB

// UploadLabReport stores a lab result file and records its metadata.
func UploadLabReport(svc labs.LabReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "report file is required", "details": err.Error()})
			return
		}
		if file.Size > maxReportSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "report file exceeds 10MB"})
			return
		}

		tempPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, tempPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload", "details": err.Error()})
			return
		}
		defer os.Remove(tempPath)

		report, err := svc.Upload(c.Request.Context(), labs.UploadInput{
			PatientID: c.PostForm("patientId"),
			DoctorID:  c.GetString("userID"),
			Title:     c.PostForm("title"),
			FilePath:  tempPath,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, report)
	}
}

// PatientReports returns the authenticated patient's lab reports with
// signed download links.
func PatientReports(svc labs.LabReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := svc.ListForPatient(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reports"})
			return
		}

		out := make([]gin.H, 0, len(reports))
		for i := range reports {
			url, err := svc.DownloadURL(c.Request.Context(), &reports[i])
			if err != nil {
				url = ""
			}
			out = append(out, gin.H{"report": reports[i], "downloadUrl": url})
		}
		c.JSON(http.StatusOK, gin.H{"reports": out})
	}
}

// DoctorReports returns reports ordered by the authenticated doctor.
func DoctorReports(svc labs.LabReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := svc.ListForDoctor(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reports"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reports": reports})
	}
}
