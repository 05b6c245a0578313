package kyc

import "strings"

// PanRecord is an entry in the income-tax PAN registry.
type PanRecord struct {
	Pan      string
	Name     string
	Category string
}

// GstRecord is an entry in the GST registration registry.
type GstRecord struct {
	Gstin        string
	LegalName    string
	TradeName    string
	Status       string
	RegisteredOn string
}

const (
	GstStatusActive    = "Active"
	GstStatusCancelled = "Cancelled"
)

// Registry resolves identifiers against an authority. Lookups report false when unknown.
type Registry interface {
	LookupPan(pan string) (*PanRecord, bool)
	LookupGst(gstin string) (*GstRecord, bool)
}

// StaticRegistry serves the hard-coded sandbox tables.
type StaticRegistry struct {
	pans map[string]PanRecord
	gsts map[string]GstRecord
}

func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{pans: sandboxPans, gsts: sandboxGsts}
}

func (r *StaticRegistry) LookupPan(pan string) (*PanRecord, bool) {
	rec, ok := r.pans[pan]
	if !ok {
		return nil, false
	}
	return &rec, true
}

func (r *StaticRegistry) LookupGst(gstin string) (*GstRecord, bool) {
	rec, ok := r.gsts[gstin]
	if !ok {
		return nil, false
	}
	return &rec, true
}

var sandboxPans = map[string]PanRecord{
	"AAGCL4821K": {Pan: "AAGCL4821K", Name: "Lumen Beauty Private Limited", Category: "Company"},
	"AABCT7315M": {Pan: "AABCT7315M", Name: "Trailhead Outdoors Private Limited", Category: "Company"},
	"AAFCR9120H": {Pan: "AAFCR9120H", Name: "Rangrez Textiles Private Limited", Category: "Company"},
	"AACFM2207Q": {Pan: "AACFM2207Q", Name: "Masala Box Foods LLP", Category: "Firm"},
	"BQZPS6342E": {Pan: "BQZPS6342E", Name: "Sneha Shetty", Category: "Individual"},
}

var sandboxGsts = map[string]GstRecord{
	"27AAGCL4821K1Z5": {Gstin: "27AAGCL4821K1Z5", LegalName: "Lumen Beauty Private Limited", TradeName: "Lumen Beauty", Status: GstStatusActive, RegisteredOn: "2019-07-01"},
	"29AABCT7315M1ZQ": {Gstin: "29AABCT7315M1ZQ", LegalName: "Trailhead Outdoors Private Limited", TradeName: "Trailhead", Status: GstStatusActive, RegisteredOn: "2021-02-15"},
	"07AAFCR9120H1ZC": {Gstin: "07AAFCR9120H1ZC", LegalName: "Rangrez Textiles Private Limited", TradeName: "Rangrez", Status: GstStatusCancelled, RegisteredOn: "2018-04-10"},
	"33AACFM2207Q1ZX": {Gstin: "33AACFM2207Q1ZX", LegalName: "Masala Box Foods LLP", TradeName: "Masala Box", Status: GstStatusActive, RegisteredOn: "2022-11-03"},
}

// stateCodes maps the first two digits of a GSTIN to the registering state.
var stateCodes = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// StateForGstin returns the state name for a GSTIN's state code.
func StateForGstin(gstin string) (code, name string) {
	if len(gstin) < 2 {
		return "", ""
	}
	code = gstin[:2]
	return code, stateCodes[code]
}

// PanFromGstin extracts the PAN embedded in characters 3 to 12.
func PanFromGstin(gstin string) string {
	if len(gstin) < 12 {
		return ""
	}
	return strings.ToUpper(gstin[2:12])
}
