package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUPIString(t *testing.T) {
	got := BuildUPIString("studynotion@upi", "StudyNotion", 499, 1)
	assert.Equal(t, "upi://pay?pa=studynotion@upi&pn=StudyNotion&am=499&tn=Course-1", got)
}

func TestBuildUPIStringIsDeterministic(t *testing.T) {
	first := BuildUPIString("merchant@bank", "StudyNotion", 1299, 42)
	second := BuildUPIString("merchant@bank", "StudyNotion", 1299, 42)
	assert.Equal(t, first, second)
}

func TestGenerateQRDataURI(t *testing.T) {
	payload := BuildUPIString("studynotion@upi", "StudyNotion", 499, 1)

	uri, err := GenerateQRDataURI(payload)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	// The encoded payload must be valid base64 holding a PNG
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), raw[:4])
}

func TestGenerateQRDataURIIsDeterministic(t *testing.T) {
	payload := BuildUPIString("studynotion@upi", "StudyNotion", 499, 1)

	first, err := GenerateQRDataURI(payload)
	require.NoError(t, err)
	second, err := GenerateQRDataURI(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
