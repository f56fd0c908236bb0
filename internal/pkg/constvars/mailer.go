package constvars

const (
	MailTypeTransactionReceipt  = "transaction_receipt"
	MailTypeAppointmentReminder = "appointment_reminder"
)

const (
	EmailReceiptSubject             = "[HMS] Your payment receipt"
	EmailReceiptBodyFormat          = "Hello %s,\n\nThank you for your payment. Order %s for %s %.2f has been recorded.\nYour receipt is attached.\n"
	EmailAppointmentReminderSubject = "[HMS] Appointment reminder"
	EmailAppointmentReminderFormat  = "Hello %s,\n\nThis is a reminder of your %s appointment with Dr. %s on %s.\nReason: %s\n"
)
