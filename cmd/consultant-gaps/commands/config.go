package commands

import (
	"time"

	"consultant-gaps/internal/gaps"
	"consultant-gaps/internal/report"
	"consultant-gaps/internal/scrapers/swiftype"
	"consultant-gaps/internal/telemetry"
)

type SearchConfig struct {
	Endpoint         string   `json:"endpoint"`
	EngineKey        string   `json:"engine_key"`
	PerPage          int      `json:"per_page"`
	DocumentType     string   `json:"document_type"`
	TypeFilter       []string `json:"type_filter"`
	SortField        string   `json:"sort_field"`
	SortDirection    string   `json:"sort_direction"`
	UserAgent        string   `json:"user_agent"`
	PageDelayMs      int      `json:"page_delay_ms"`
	FailureBackoffMs int      `json:"failure_backoff_ms"`
	TimeoutSeconds   int      `json:"timeout_seconds"`
	PageRetries      int      `json:"page_retries"`
}

type FilesConfig struct {
	Consultants string `json:"consultants"`
	Procedures  string `json:"procedures"`
	OutputCSV   string `json:"output_csv"`
	OutputHTML  string `json:"output_html"`
}

type ReportConfig struct {
	Title              string        `json:"title"`
	TopTreatments      int           `json:"top_treatments"`
	TreatmentDelimiter string        `json:"treatment_delimiter"`
	Styles             report.Styles `json:"styles"`
}

type Config struct {
	Search     SearchConfig     `json:"search"`
	Files      FilesConfig      `json:"files"`
	Classifier gaps.Rules       `json:"classifier"`
	Report     ReportConfig     `json:"report"`
	Telemetry  telemetry.Config `json:"telemetry"`
}

func defaultConfig() Config {
	search := swiftype.DefaultOptions()
	return Config{
		Search: SearchConfig{
			Endpoint:         search.Endpoint,
			EngineKey:        search.EngineKey,
			PerPage:          search.PerPage,
			DocumentType:     search.DocumentType,
			TypeFilter:       search.TypeFilter,
			SortField:        search.SortField,
			SortDirection:    search.SortDirection,
			UserAgent:        search.UserAgent,
			PageDelayMs:      int(search.PageDelay / time.Millisecond),
			FailureBackoffMs: int(search.FailureBackoff / time.Millisecond),
			TimeoutSeconds:   int(search.Timeout / time.Second),
		},
		Files: FilesConfig{
			Consultants: "nuffield_consultants.csv",
			Procedures:  "nuffield_procedures.csv",
			OutputCSV:   "nuffield_gap_analysis.csv",
			OutputHTML:  "nuffield_gap_analysis.html",
		},
		Classifier: gaps.DefaultRules(),
		Report: ReportConfig{
			Title:              "Nuffield Health consultant profile gap analysis",
			TopTreatments:      20,
			TreatmentDelimiter: ";",
			Styles:             report.DefaultStyles(),
		},
	}
}

func (c SearchConfig) options() swiftype.Options {
	return swiftype.Options{
		Endpoint:       c.Endpoint,
		EngineKey:      c.EngineKey,
		PerPage:        c.PerPage,
		DocumentType:   c.DocumentType,
		TypeFilter:     c.TypeFilter,
		SortField:      c.SortField,
		SortDirection:  c.SortDirection,
		UserAgent:      c.UserAgent,
		PageDelay:      time.Duration(c.PageDelayMs) * time.Millisecond,
		FailureBackoff: time.Duration(c.FailureBackoffMs) * time.Millisecond,
		Timeout:        time.Duration(c.TimeoutSeconds) * time.Second,
		PageRetries:    c.PageRetries,
	}
}
