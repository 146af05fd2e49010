package gaps

import (
	"strconv"
	"strings"

	"consultant-gaps/internal/consultant"
	"consultant-gaps/lib/textutil"
)

// Rules is the configuration the classifier depends on.
type Rules struct {
	// PlaceholderPatterns are substrings of an image url that mark it as a
	// stock image rather than a real photo. Matching is case-insensitive.
	PlaceholderPatterns []string `json:"placeholder_patterns"`
}

func DefaultRules() Rules {
	return Rules{
		PlaceholderPatterns: []string{
			"placeholder",
			"no-image",
			"default-consultant",
			"silhouette",
			"generic",
		},
	}
}

type Classifier struct {
	patterns []string
}

func NewClassifier(rules Rules) Classifier {
	return Classifier{patterns: textutil.LowerAll(rules.PlaceholderPatterns)}
}

// GapRecord is the classified view of one consultant.
type GapRecord struct {
	Id             string      `json:"id"`
	Fullname       string      `json:"fullname"`
	Title          string      `json:"title"`
	Url            string      `json:"url"`
	Gender         string      `json:"gender"`
	Specialties    string      `json:"specialties"`
	Hospitals      string      `json:"hospitals"`
	Locations      string      `json:"locations"`
	Languages      string      `json:"languages"`
	Qualifications string      `json:"qualifications"`
	GmcNumber      string      `json:"gmc_number"`
	Bookable       string      `json:"bookable"`
	Image          string      `json:"image"`
	PhotoStatus    PhotoStatus `json:"photo_status"`
	Treatments     string      `json:"treatments"`
	Flags          FlagSet     `json:"flags"`
	MissingCount   int         `json:"missing_count"`
}

// PhotoStatus classifies a raw image value.
func (c Classifier) PhotoStatus(image string) PhotoStatus {
	return ClassifyPhoto(consultant.Normalize(image), c.patterns)
}

// Classify derives the gap flags of a consultant. `treatments` may be nil,
// NO_TREATMENTS is only evaluated against an index with at least one entry.
func (c Classifier) Classify(rec consultant.Record, treatments *TreatmentIndex) GapRecord {
	out := GapRecord{
		Id:             rec.Id(),
		Fullname:       rec.Get(consultant.FieldFullname),
		Title:          rec.Get(consultant.FieldTitle),
		Url:            rec.Get(consultant.FieldUrl),
		Gender:         rec.Get(consultant.FieldGender),
		Specialties:    rec.Get(consultant.FieldSpecialties),
		Hospitals:      rec.Get(consultant.FieldHospitals),
		Locations:      rec.Get(consultant.FieldLocations),
		Languages:      rec.Get(consultant.FieldLanguages),
		Qualifications: rec.Get(consultant.FieldQualifications),
		GmcNumber:      rec.Get(consultant.FieldGmcNumber),
		Bookable:       rec.Get(consultant.FieldBookable),
		Image:          rec.Get(consultant.FieldImage),
	}
	out.PhotoStatus = ClassifyPhoto(out.Image, c.patterns)

	checkTreatments := treatments.Len() > 0
	if checkTreatments {
		out.Treatments = treatments.Lookup(out.Id)
	}

	flags := FlagSet{}
	add := func(flag Flag, cond bool) {
		if cond {
			flags = append(flags, flag)
		}
	}
	add(NoPhoto, out.PhotoStatus == PhotoMissing)
	add(PlaceholderPhoto, out.PhotoStatus == PhotoPlaceholder)
	add(NoSpecialties, out.Specialties == "")
	add(NoQualifications, out.Qualifications == "")
	add(NoGmc, out.GmcNumber == "")
	add(NoLanguages, out.Languages == "")
	add(NoHospital, out.Hospitals == "")
	add(NotBookable, strings.ToLower(out.Bookable) != "true")
	add(GenderUnspecified, out.Gender == "" || strings.ToLower(out.Gender) == "unspecified")
	add(NoTreatments, checkTreatments && out.Treatments == "")

	out.Flags = flags
	out.MissingCount = len(flags)
	return out
}

// ClassifyAll classifies records in order.
func (c Classifier) ClassifyAll(records []consultant.Record, treatments *TreatmentIndex) []GapRecord {
	out := make([]GapRecord, len(records))
	for i, rec := range records {
		out[i] = c.Classify(rec, treatments)
	}
	return out
}

var baseColumns = []string{
	"id", "fullname", "title", "url", "gender",
	"specialties", "hospitals", "locations", "languages",
	"qualifications", "gmc_number", "bookable", "image",
	"photo_status", "treatments", "missing_count", "missing_fields",
}

// Columns is the header of the gap CSV: the display fields followed by one
// 0/1 column per flag.
func Columns() []string {
	out := make([]string, 0, len(baseColumns)+len(AllFlags))
	out = append(out, baseColumns...)
	for _, f := range AllFlags {
		out = append(out, f.Column())
	}
	return out
}

func boolCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Row renders the record against Columns.
func (g GapRecord) Row() map[string]string {
	row := map[string]string{
		"id":             g.Id,
		"fullname":       g.Fullname,
		"title":          g.Title,
		"url":            g.Url,
		"gender":         g.Gender,
		"specialties":    g.Specialties,
		"hospitals":      g.Hospitals,
		"locations":      g.Locations,
		"languages":      g.Languages,
		"qualifications": g.Qualifications,
		"gmc_number":     g.GmcNumber,
		"bookable":       g.Bookable,
		"image":          g.Image,
		"photo_status":   string(g.PhotoStatus),
		"treatments":     g.Treatments,
		"missing_count":  strconv.Itoa(g.MissingCount),
		"missing_fields": g.Flags.String(),
	}
	for _, f := range AllFlags {
		row[f.Column()] = boolCell(g.Flags.Has(f))
	}
	return row
}

// Data is the record as embedded in the HTML report: the same keys as Row
// with numbers and flags kept typed.
func (g GapRecord) Data() map[string]any {
	data := map[string]any{}
	for k, v := range g.Row() {
		data[k] = v
	}
	data["missing_count"] = g.MissingCount
	flags := make([]string, len(g.Flags))
	for i, f := range g.Flags {
		flags[i] = string(f)
	}
	data["flags"] = flags
	for _, f := range AllFlags {
		data[f.Column()] = g.Flags.Has(f)
	}
	return data
}
