// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ocr

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/Azure/go-autorest/autorest"
)

// Azure recognizes printed text with the Azure Computer Vision OCR API.
type Azure struct {
	client *computervision.BaseClient
}

var _ Engine = (*Azure)(nil)

// NewAzure creates an engine bound to one Computer Vision endpoint.
func NewAzure(endpoint, apiKey string) *Azure {
	client := computervision.New(endpoint)
	client.Authorizer = autorest.NewCognitiveServicesAuthorizer(apiKey)
	return &Azure{client: &client}
}

// Recognize runs printed-text OCR on the image and returns the recognized
// text, lines joined with newlines in reading order.
func (a *Azure) Recognize(ctx context.Context, image io.Reader) (string, error) {
	result, err := a.client.RecognizePrintedTextInStream(
		ctx,
		true, // detect orientation
		io.NopCloser(image),
		computervision.OcrLanguages(computervision.En),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognition, err)
	}
	return flattenResult(result), nil
}

// flattenResult joins the region/line/word hierarchy of an OCR result into
// plain text: words separated by spaces, lines by newlines.
func flattenResult(result computervision.OcrResult) string {
	if result.Regions == nil {
		return ""
	}

	var lines []string
	for _, region := range *result.Regions {
		if region.Lines == nil {
			continue
		}
		for _, line := range *region.Lines {
			if line.Words == nil {
				continue
			}
			var words []string
			for _, word := range *line.Words {
				if word.Text != nil {
					words = append(words, *word.Text)
				}
			}
			if len(words) > 0 {
				lines = append(lines, strings.Join(words, " "))
			}
		}
	}
	return strings.Join(lines, "\n")
}
