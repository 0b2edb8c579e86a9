// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InputType is the kind of raw input a capture carries.
type InputType string

const (
	InputAudio InputType = "audio"
	InputText  InputType = "text"
	InputImage InputType = "image"
)

// Valid reports whether t is one of the supported input kinds.
func (t InputType) Valid() bool {
	switch t {
	case InputAudio, InputText, InputImage:
		return true
	}
	return false
}

// CaptureMetadata describes who submitted a capture and from where.
type CaptureMetadata struct {
	Username  string    `json:"username"`
	Source    string    `json:"source"`
	DeviceID  string    `json:"deviceId,omitempty"`
	InputType InputType `json:"inputType"`
	RequestID string    `json:"requestId,omitempty"`
}

// CaptureRequest is one user-submitted input. Exactly one of Transcript,
// AudioPayload or ImagePayload is primary, chosen by InputType.
type CaptureRequest struct {
	CaptureMetadata

	Transcript       string `json:"transcript,omitempty"`
	AudioPayload     []byte `json:"audioPayload,omitempty"`
	ImagePayload     []byte `json:"imagePayload,omitempty"`
	OriginalFilename string `json:"originalFilename,omitempty"`
	ContentType      string `json:"contentType,omitempty"`

	// ExpectedMemoCount is an optional hint forwarded to the understanding step.
	ExpectedMemoCount int `json:"expectedMemoCount,omitempty"`
}

// Payload returns the binary payload matching the declared input type.
func (r CaptureRequest) Payload() []byte {
	switch r.InputType {
	case InputAudio:
		return r.AudioPayload
	case InputImage:
		return r.ImagePayload
	}
	return nil
}

// CaptureReceipt is the normalized identity of an accepted capture.
type CaptureReceipt struct {
	Username   string    `json:"username"`
	Source     string    `json:"source"`
	DeviceID   string    `json:"deviceId,omitempty"`
	InputType  InputType `json:"inputType"`
	RequestID  string    `json:"requestId"`
	ReceivedAt time.Time `json:"receivedAt"`
}
