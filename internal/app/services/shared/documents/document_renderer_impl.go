package documents

import (
	"bytes"
	"fmt"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/jung-kurt/gofpdf"
)

const (
	receiptDocument = "receipt"
	ledgerDocument  = "ledger"
	ledgerSheetName = "Transactions"
	dateTimeLayout  = "02 Jan 2006 15:04"
)

type documentRenderer struct{}

func NewDocumentRenderer() contracts.DocumentRenderer {
	return &documentRenderer{}
}

func (r *documentRenderer) RenderReceiptPDF(transaction *models.Transaction, user *models.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Hospital Management System", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Payment Receipt", "1", 1, "C", false, 0, "")

	addDetail(pdf, "Billed To", fmt.Sprintf("%s <%s>", user.Name, user.Email), false)
	addDetail(pdf, "Transaction", transaction.ID.Hex(), false)
	addDetail(pdf, "Order ID", transaction.OrderID, false)
	addDetail(pdf, "Payment ID", transaction.PaymentID, false)
	addDetail(pdf, "Receipt", transaction.Receipt, false)
	addDetail(pdf, "Status", transaction.Status, false)
	addDetail(pdf, "Date", transaction.CreatedAt.Format(dateTimeLayout), false)

	if len(transaction.Items) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(100, 10, "Service", "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 10, "Duration", "1", 0, "", false, 0, "")
		pdf.CellFormat(0, 10, "Price", "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, item := range transaction.Items {
			pdf.CellFormat(100, 8, item.Name, "1", 0, "", false, 0, "")
			pdf.CellFormat(40, 8, item.Duration, "1", 0, "", false, 0, "")
			pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", item.Price), "1", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(4)
	addDetail(pdf, "Total", fmt.Sprintf("%s %.2f", transaction.Currency, utils.ToMajorUnits(transaction.Amount)), true)

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, "This is a computer generated receipt and does not require a signature.", "", "R", false)

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, exceptions.ErrRenderDocument(err, receiptDocument)
	}
	return buffer.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}

func (r *documentRenderer) RenderLedgerXLSX(ledger *responses.Ledger) ([]byte, error) {
	headers := map[string]string{
		"A1": "Date",
		"B1": "Name",
		"C1": "Email",
		"D1": "Order ID",
		"E1": "Payment ID",
		"F1": "Receipt",
		"G1": "Currency",
		"H1": "Amount",
		"I1": "Status",
		"J1": "Items",
	}

	file := excelize.NewFile()
	index := file.NewSheet(ledgerSheetName)
	file.DeleteSheet("Sheet1")
	file.SetActiveSheet(index)
	for cell, header := range headers {
		file.SetCellValue(ledgerSheetName, cell, header)
	}

	for i, entry := range ledger.Transactions {
		appendLedgerRow(file, i+2, entry)
	}

	totalRow := len(ledger.Transactions) + 2
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("G%d", totalRow), "Total")
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("H%d", totalRow), utils.ToMajorUnits(ledger.Total))

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, exceptions.ErrRenderDocument(err, ledgerDocument)
	}
	return buffer.Bytes(), nil
}

func appendLedgerRow(file *excelize.File, row int, entry responses.LedgerEntry) {
	name, email := "", ""
	if entry.User != nil {
		name, email = entry.User.Name, entry.User.Email
	}

	itemNames := ""
	for i, item := range entry.Items {
		if i > 0 {
			itemNames += ", "
		}
		itemNames += item.Name
	}

	file.SetCellValue(ledgerSheetName, fmt.Sprintf("A%d", row), entry.CreatedAt.Format(time.RFC3339))
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("B%d", row), name)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("C%d", row), email)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("D%d", row), entry.OrderID)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("E%d", row), entry.PaymentID)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("F%d", row), entry.Receipt)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("G%d", row), entry.Currency)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("H%d", row), utils.ToMajorUnits(entry.Amount))
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("I%d", row), entry.Status)
	file.SetCellValue(ledgerSheetName, fmt.Sprintf("J%d", row), itemNames)
}
