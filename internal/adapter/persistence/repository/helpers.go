package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary and decimal-hour fields are stored as string attributes so the
// exact float64 round-trips without DynamoDB number coercion.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
