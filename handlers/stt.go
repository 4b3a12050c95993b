// File: handlers/stt.go
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"healthverse/config"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	maxAudioFileSize = 5 * 1024 * 1024 // 5MB
	audioExtension   = ".wav"
)

func convertAudio(inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// VoiceSymptom transcribes a spoken symptom description so the client can
// feed it to the triage advisor.
func VoiceSymptom() gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultPostForm("language", "en-US")

		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required", "details": err.Error()})
			return
		}
		defer file.Close()

		if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != audioExtension {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid file type",
				"details": fmt.Sprintf("expected %s, got %s", audioExtension, ext),
			})
			return
		}

		tempInput, err := os.CreateTemp("", "symptom-*.wav")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create temp file", "details": err.Error()})
			return
		}
		defer os.Remove(tempInput.Name())
		defer tempInput.Close()

		if _, err := io.Copy(tempInput, io.LimitReader(file, maxAudioFileSize)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save audio file", "details": err.Error()})
			return
		}

		tempOutput, err := os.CreateTemp("", "converted-*.wav")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create output temp file", "details": err.Error()})
			return
		}
		defer os.Remove(tempOutput.Name())
		defer tempOutput.Close()

		if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio conversion failed", "details": err.Error()})
			return
		}

		audioData, err := os.ReadFile(tempOutput.Name())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read converted audio", "details": err.Error()})
			return
		}

		ctx := context.Background()
		client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleCredentialsPath))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize speech client", "details": err.Error()})
			return
		}
		defer client.Close()

		req := &speechpb.RecognizeRequest{
			Config: &speechpb.RecognitionConfig{
				Encoding:          speechpb.RecognitionConfig_LINEAR16,
				SampleRateHertz:   16000,
				LanguageCode:      language,
				AudioChannelCount: 1,
			},
			Audio: &speechpb.RecognitionAudio{
				AudioSource: &speechpb.RecognitionAudio_Content{
					Content: audioData,
				},
			},
		}

		resp, err := client.Recognize(ctx, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "speech recognition failed", "details": err.Error()})
			return
		}

		var transcript strings.Builder
		for _, result := range resp.Results {
			for _, alt := range result.Alternatives {
				transcript.WriteString(alt.Transcript + " ")
			}
		}

		c.JSON(http.StatusOK, gin.H{"transcript": strings.TrimSpace(transcript.String())})
	}
}
