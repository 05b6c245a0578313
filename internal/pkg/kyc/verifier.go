package kyc

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

	ErrInvalidPanFormat = errors.New("Invalid PAN format")
	ErrInvalidGstFormat = errors.New("Invalid GSTIN format")
)

type PanResult struct {
	Pan            string `json:"pan"`
	Verified       bool   `json:"verified"`
	RegisteredName string `json:"registeredName,omitempty"`
	Category       string `json:"category,omitempty"`
	NameMatch      *bool  `json:"nameMatch,omitempty"`
}

type GstResult struct {
	Gstin              string `json:"gstin"`
	Verified           bool   `json:"verified"`
	LegalName          string `json:"legalName,omitempty"`
	TradeName          string `json:"tradeName,omitempty"`
	State              string `json:"state,omitempty"`
	StateCode          string `json:"stateCode,omitempty"`
	RegistrationStatus string `json:"registrationStatus,omitempty"`
	RegisteredOn       string `json:"registeredOn,omitempty"`
	Pan                string `json:"pan"`
	PanMatch           bool   `json:"panMatch"`
}

// Verifier checks identifier formats and fronts the registry with a TTL cache.
type Verifier struct {
	registry Registry
	cache    *cache.Cache
}

func NewVerifier(registry Registry, ttl time.Duration) *Verifier {
	return &Verifier{
		registry: registry,
		cache:    cache.New(ttl, 2*ttl),
	}
}

func NormalizePan(pan string) string {
	return strings.ToUpper(strings.TrimSpace(pan))
}

func NormalizeGstin(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}

func ValidPan(pan string) bool {
	return panPattern.MatchString(pan)
}

func ValidGstin(gstin string) bool {
	return gstPattern.MatchString(gstin)
}

// VerifyPAN looks the PAN up and, when name is given, compares it with the
// registered name ignoring case and surrounding spaces.
func (v *Verifier) VerifyPAN(pan, name string) (*PanResult, error) {
	pan = NormalizePan(pan)
	if !ValidPan(pan) {
		return nil, ErrInvalidPanFormat
	}

	result := &PanResult{Pan: pan}
	rec := v.lookupPan(pan)
	if rec == nil {
		return result, nil
	}

	result.Verified = true
	result.RegisteredName = rec.Name
	result.Category = rec.Category
	if strings.TrimSpace(name) != "" {
		match := strings.EqualFold(strings.TrimSpace(name), rec.Name)
		result.NameMatch = &match
	}
	return result, nil
}

// VerifyGST looks the GSTIN up. Cancelled registrations come back unverified
// with their status so the caller can explain why. orgPan drives panMatch.
func (v *Verifier) VerifyGST(gstin, orgPan string) (*GstResult, error) {
	gstin = NormalizeGstin(gstin)
	if !ValidGstin(gstin) {
		return nil, ErrInvalidGstFormat
	}

	code, state := StateForGstin(gstin)
	embedded := PanFromGstin(gstin)
	result := &GstResult{
		Gstin:     gstin,
		StateCode: code,
		State:     state,
		Pan:       embedded,
		PanMatch:  orgPan != "" && embedded == NormalizePan(orgPan),
	}

	rec := v.lookupGst(gstin)
	if rec == nil {
		return result, nil
	}

	result.LegalName = rec.LegalName
	result.TradeName = rec.TradeName
	result.RegistrationStatus = rec.Status
	result.RegisteredOn = rec.RegisteredOn
	result.Verified = rec.Status == GstStatusActive
	return result, nil
}

func (v *Verifier) lookupPan(pan string) *PanRecord {
	key := "pan:" + pan
	if cached, found := v.cache.Get(key); found {
		return cached.(*PanRecord)
	}
	rec, _ := v.registry.LookupPan(pan)
	v.cache.Set(key, rec, cache.DefaultExpiration)
	return rec
}

func (v *Verifier) lookupGst(gstin string) *GstRecord {
	key := "gst:" + gstin
	if cached, found := v.cache.Get(key); found {
		return cached.(*GstRecord)
	}
	rec, _ := v.registry.LookupGst(gstin)
	v.cache.Set(key, rec, cache.DefaultExpiration)
	return rec
}
