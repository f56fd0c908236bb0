package utils

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateOrderReceipt builds the gateway receipt in the form receipt_order_<unix ms>.
func GenerateOrderReceipt(now time.Time) string {
	return constvars.ReceiptOrderPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

func GenerateReceiptObjectKey(identityID, transactionID string) string {
	return fmt.Sprintf(constvars.ReceiptObjectKeyFormat, identityID, transactionID)
}

func GenerateLedgerExportFileName(now time.Time) string {
	return fmt.Sprintf(constvars.LedgerExportFileNameFormat, now.Format("20060102_150405"))
}

// ToMinorUnits converts a major currency amount into gateway minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(amount*constvars.MinorUnitsPerMajorUnit + 0.5)
}

func ToMajorUnits(amount int64) float64 {
	return float64(amount) / constvars.MinorUnitsPerMajorUnit
}
