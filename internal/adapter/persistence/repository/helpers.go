package repository

import (
	"time"

	"construction_estimator/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(v string) time.Time {
	t, _ := time.Parse(dateLayout, v)
	return t
}

func cloneHistory(h entities.UserHistory) entities.UserHistory {
	out := h
	out.HouseData = make([]entities.HouseRecord, len(h.HouseData))
	copy(out.HouseData, h.HouseData)
	out.EstimationData = make([]entities.EstimationRecord, len(h.EstimationData))
	copy(out.EstimationData, h.EstimationData)
	return out
}
