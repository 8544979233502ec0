// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// mbti-scan drives the full pipeline from the command line: read a sheet
// photo, recognize its text, derive the type code and completion score, and
// submit the result to the backend. One OCR run and one submission per
// invocation; failures are reported for the user to retry manually.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Aritra-2000/MBTI/client"
	"github.com/Aritra-2000/MBTI/mbti"
	"github.com/Aritra-2000/MBTI/ocr"
)

func main() {
	_ = godotenv.Load()

	var (
		imagePath = flag.String("image", "", "Path to the answer sheet photo (required)")
		name      = flag.String("name", "", "Submitter name (required)")
		server    = flag.String("server", "http://localhost:5000", "Backend base URL")
		override  = flag.String("mbti", "", "Type code override (skips extraction)")
		questions = flag.Int("questions", mbti.DefaultQuestions, "Expected question count on the sheet")
		textPath  = flag.String("text", "", "Pre-recognized text file (skips OCR)")
	)
	flag.Parse()

	if *imagePath == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*imagePath, *name, *server, *override, *textPath, *questions); err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}
}

func run(imagePath, name, server, override, textPath string, questions int) error {
	imageBytes, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	text, err := recognize(imageBytes, textPath)
	if err != nil {
		return err
	}

	fmt.Println("--- recognized text ---")
	fmt.Println(text)
	fmt.Println("-----------------------")

	code, ok := mbti.Extract(text)
	if !ok {
		code = mbti.Unknown
	}
	score := mbti.Score(text, questions)
	fmt.Printf("detected type: %s\ncompletion:    %d%%\n", code, score)

	c := client.New(server)
	res, err := c.Submit(context.Background(), client.Submission{
		Name:        name,
		Text:        text,
		Mbti:        override, // empty means: use the extracted code
		Score:       score,
		ImageBase64: base64.StdEncoding.EncodeToString(imageBytes),
	})
	if err != nil {
		return err
	}

	if res.Duplicate {
		fmt.Println("already recorded: this sheet was submitted before")
		return nil
	}
	fmt.Println("recorded")
	return nil
}

// recognize produces the sheet text, either from a pre-recognized text file
// or by running Azure OCR on the image bytes.
func recognize(imageBytes []byte, textPath string) (string, error) {
	if textPath != "" {
		text, err := os.ReadFile(textPath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(text), nil
	}

	endpoint := os.Getenv("AZURE_OCR_ENDPOINT")
	apiKey := os.Getenv("AZURE_OCR_KEY")
	if endpoint == "" || apiKey == "" {
		return "", errors.New("AZURE_OCR_ENDPOINT and AZURE_OCR_KEY required (or pass -text)")
	}

	engine := ocr.NewAzure(endpoint, apiKey)
	text, err := engine.Recognize(context.Background(), bytes.NewReader(imageBytes))
	if err != nil {
		return "", err
	}
	return text, nil
}
