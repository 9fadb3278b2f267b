package services

import (
	"context"
	"fmt"
)

// Risk levels as the analysis collaborator reports them.
const (
	RiskLevelHigh   = "Alto"
	RiskLevelMedium = "Medio"
	RiskLevelLow    = "Basso"
)

// RiskRecord is one finding returned by the risk analysis collaborator.
type RiskRecord struct {
	Risk       string `json:"risk"`
	Impact     string `json:"impact"`
	Likelihood string `json:"likelihood"`
	Suggestion string `json:"suggestion"`
}

// RiskAnalyzer is the opaque analysis service. A nil result means the
// analysis has not run; an empty slice means no risks were found. Analyzer
// failures are opaque to the caller and never affect reconciliation.
type RiskAnalyzer interface {
	Analyze(ctx context.Context, doc Document) ([]RiskRecord, error)
}

// ValidateRiskRecords rejects findings whose levels are outside the known
// scale, so a misbehaving collaborator cannot smuggle arbitrary values into
// the report.
func ValidateRiskRecords(records []RiskRecord) error {
	for i, r := range records {
		if !validRiskLevel(r.Impact) {
			return fmt.Errorf("risk %d: unknown impact level %q", i, r.Impact)
		}
		if !validRiskLevel(r.Likelihood) {
			return fmt.Errorf("risk %d: unknown likelihood level %q", i, r.Likelihood)
		}
	}
	return nil
}

func validRiskLevel(level string) bool {
	switch level {
	case RiskLevelHigh, RiskLevelMedium, RiskLevelLow:
		return true
	}
	return false
}
