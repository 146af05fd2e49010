package consultant

// Fields is the column list of the raw consultants CSV.
var Fields = []string{
	"id", "fullname", "firstname", "lastname", "title",
	"url", "gender", "specialties", "hospitals", "locations",
	"image", "bookable", "gmcNumber", "professionalQualifications",
	"languages", "offersPaediatrics", "roboticAssistedSurgery",
	"gpReferralRequired", "daysUntilNextAppointment", "availabilityRank",
	"popularity", "updated_at",
}

const (
	FieldId             = "id"
	FieldFullname       = "fullname"
	FieldTitle          = "title"
	FieldUrl            = "url"
	FieldGender         = "gender"
	FieldSpecialties    = "specialties"
	FieldHospitals      = "hospitals"
	FieldLocations      = "locations"
	FieldImage          = "image"
	FieldBookable       = "bookable"
	FieldGmcNumber      = "gmcNumber"
	FieldQualifications = "professionalQualifications"
	FieldLanguages      = "languages"
)

// Record is one consultant as delivered by the search API (decoded JSON
// object) or read back from a CSV row. Values are left untouched until
// they are read through Get.
type Record map[string]any

// FromStrings wraps a CSV row.
func FromStrings(row map[string]string) Record {
	rec := make(Record, len(row))
	for k, v := range row {
		rec[k] = v
	}
	return rec
}

// Get returns the normalized value of a field, "" when absent.
func (r Record) Get(field string) string {
	return Normalize(r[field])
}

// Id is the join key used against the procedures dataset.
func (r Record) Id() string {
	return r.Get(FieldId)
}

// Flatten renders the record as a CSV row for the given columns.
func (r Record) Flatten(fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = r.Get(f)
	}
	return out
}

// FlattenAll renders every record against Fields.
func FlattenAll(records []Record) []map[string]string {
	out := make([]map[string]string, len(records))
	for i, r := range records {
		out[i] = r.Flatten(Fields)
	}
	return out
}
