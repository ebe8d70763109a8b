package main

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-registry-go/features/checkavailability"
	"github.com/AntonStoeckl/lending-registry-go/shell"
)

// historyEntry is the JSON form of a journal entry.
type historyEntry struct {
	SequenceNumber uint                `json:"sequence_number"`
	EventType      string              `json:"event_type"`
	OccurredAt     time.Time           `json:"occurred_at"`
	Payload        jsoniter.RawMessage `json:"payload"`
	Metadata       jsoniter.RawMessage `json:"metadata"`
}

func (a *app) printLine(format string, args ...any) error {
	_, err := fmt.Fprintf(a.stdout, format+"\n", args...)

	return err
}

func (a *app) printJSON(value any) error {
	encoded, err := jsoniter.ConfigFastest.Marshal(value)
	if err != nil {
		return err
	}

	return a.printLine("%s", encoded)
}

func (a *app) printReport(report checkavailability.AvailabilityReport) error {
	if a.jsonOutput {
		return a.printJSON(report)
	}

	return a.printLine("%s", report.String())
}

func (a *app) printReports(reports checkavailability.AvailabilityReports) error {
	if a.jsonOutput {
		return a.printJSON(reports)
	}

	for _, report := range reports {
		if err := a.printLine("%s", report.String()); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) printHistory(entries []shell.JournalEntry) error {
	if a.jsonOutput {
		history := make([]historyEntry, 0, len(entries))
		for _, entry := range entries {
			history = append(history, historyEntry{
				SequenceNumber: entry.SequenceNumber,
				EventType:      entry.EventType,
				OccurredAt:     entry.OccurredAt,
				Payload:        entry.PayloadJSON,
				Metadata:       entry.MetadataJSON,
			})
		}

		return a.printJSON(history)
	}

	for _, entry := range entries {
		err := a.printLine("%d %s %s %s",
			entry.SequenceNumber, entry.OccurredAt.Format(time.RFC3339Nano), entry.EventType, entry.PayloadJSON)
		if err != nil {
			return err
		}
	}

	return nil
}
