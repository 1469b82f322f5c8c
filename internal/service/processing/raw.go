package processing

import (
	"fmt"
	"strings"

	"dispatch-board/internal/domain"
)

// Upstream exporters disagree on field casing and naming, so every field is
// read through a fallback key list. All shape tolerance lives in this file;
// downstream code only ever sees the canonical domain structs.

func stringField(r domain.RawRecord, keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return strings.TrimSpace(s)
		default:
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return ""
}

func chassisNumber(r domain.RawRecord) string {
	return stringField(r, "chassisNumber", "ChassisNumber", "chassis_number", "chassis")
}

func customer(r domain.RawRecord) string {
	return stringField(r, "customer", "Customer", "customerName")
}

func model(r domain.RawRecord) string {
	return stringField(r, "model", "Model")
}
