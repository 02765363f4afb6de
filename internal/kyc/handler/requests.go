package handler

import (
	"strings"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/service"
	dErrors "kycsim/pkg/domain-errors"
)

// PANRequest is the body for POST /kyc/verify/pan.
type PANRequest struct {
	PANNumber string `json:"pan_number"`
}

func (r *PANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.PANNumber = strings.TrimSpace(r.PANNumber)
	if r.PANNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "pan_number is required")
	}
	if len(r.PANNumber) > 20 {
		return dErrors.New(dErrors.CodeValidation, "pan_number must be at most 20 characters")
	}
	return nil
}

// AadhaarRequest is the body for POST /kyc/verify/aadhaar. AadhaarNumber
// must be the raw, unmasked number.
type AadhaarRequest struct {
	AadhaarNumber string `json:"aadhaar_number"`
	OTP           string `json:"otp"`
}

func (r *AadhaarRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.AadhaarNumber = strings.TrimSpace(r.AadhaarNumber)
	if r.AadhaarNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "aadhaar_number is required")
	}
	if len(r.AadhaarNumber) > 16 {
		return dErrors.New(dErrors.CodeValidation, "aadhaar_number must be at most 16 characters")
	}
	if r.OTP == "" {
		return dErrors.New(dErrors.CodeValidation, "otp is required")
	}
	return nil
}

// DigilockerRequest is the body for POST /kyc/verify/digilocker.
type DigilockerRequest struct {
	DigilockerID string `json:"digilocker_id"`
}

func (r *DigilockerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.DigilockerID = strings.TrimSpace(r.DigilockerID)
	if r.DigilockerID == "" {
		return dErrors.New(dErrors.CodeValidation, "digilocker_id is required")
	}
	return nil
}

// CKYCRequest is the body for POST /kyc/registry/ckyc.
type CKYCRequest struct {
	PANNumber string `json:"pan_number"`
}

func (r *CKYCRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.PANNumber = strings.TrimSpace(r.PANNumber)
	if r.PANNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "pan_number is required")
	}
	return nil
}

// VideoKYCRequest is the body for POST /kyc/verify/video.
type VideoKYCRequest struct {
	ApplicantName string `json:"applicant_name"`
}

func (r *VideoKYCRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.ApplicantName = strings.TrimSpace(r.ApplicantName)
	if r.ApplicantName == "" {
		return dErrors.New(dErrors.CodeValidation, "applicant_name is required")
	}
	return nil
}

// OfflineAadhaarRequest is the body for POST /kyc/verify/offline-aadhaar.
type OfflineAadhaarRequest struct {
	AadhaarNumber string `json:"aadhaar_number"`
}

func (r *OfflineAadhaarRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.AadhaarNumber = strings.TrimSpace(r.AadhaarNumber)
	if r.AadhaarNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "aadhaar_number is required")
	}
	return nil
}

// FlowRequest is the body for POST /kyc/flow.
type FlowRequest struct {
	Method    string              `json:"method"`
	Personal  models.PersonalData `json:"personal"`
	Documents models.Documents    `json:"documents"`
	OTP       string              `json:"otp"`

	parsedMethod models.Method
}

func (r *FlowRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Method = strings.TrimSpace(r.Method)
	if r.Method == "" {
		return dErrors.New(dErrors.CodeValidation, "method is required")
	}
	method, ok := models.ParseMethod(r.Method)
	if !ok {
		return dErrors.Newf(dErrors.CodeValidation, "unknown method %q", r.Method)
	}
	r.parsedMethod = method

	r.Documents.PANNumber = strings.TrimSpace(r.Documents.PANNumber)
	r.Documents.AadhaarNumber = strings.TrimSpace(r.Documents.AadhaarNumber)
	if r.Documents.PANNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "documents.pan_number is required")
	}
	if r.Documents.AadhaarNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "documents.aadhaar_number is required")
	}
	return nil
}

// ToFlowRequest builds the domain request from the validated body.
func (r *FlowRequest) ToFlowRequest() service.FlowRequest {
	return service.FlowRequest{
		Method:    r.parsedMethod,
		Personal:  r.Personal,
		Documents: r.Documents,
		OTP:       r.OTP,
	}
}
