package apierror

// Error classes, one per resource and operation. Codes follow the scheme of
// the BitPay SDK family: x0y where x selects the resource and y the
// operation, 100 being the generic class.
var (
	Generic = Class{100, "BITPAY-GENERIC", "unexpected error"}

	InvoiceGeneric = Class{101, "BITPAY-INVOICE-GENERIC", "an unexpected error occurred while trying to manage the invoice"}
	InvoiceCreate  = Class{102, "BITPAY-INVOICE-CREATE", "failed to create invoice"}
	InvoiceQuery   = Class{103, "BITPAY-INVOICE-GET", "failed to retrieve invoice"}
	InvoiceUpdate  = Class{104, "BITPAY-INVOICE-UPDATE", "failed to update invoice"}
	InvoiceCancel  = Class{105, "BITPAY-INVOICE-CANCEL", "failed to cancel invoice"}
	InvoicePay     = Class{106, "BITPAY-INVOICE-PAY", "failed to pay invoice"}

	BillGeneric  = Class{111, "BITPAY-BILL-GENERIC", "an unexpected error occurred while trying to manage the bill"}
	BillCreate   = Class{112, "BITPAY-BILL-CREATE", "failed to create bill"}
	BillQuery    = Class{113, "BITPAY-BILL-GET", "failed to retrieve bill"}
	BillUpdate   = Class{114, "BITPAY-BILL-UPDATE", "failed to update bill"}
	BillDelivery = Class{115, "BITPAY-BILL-DELIVERY", "failed to deliver bill"}

	PayoutGeneric      = Class{121, "BITPAY-PAYOUT-GENERIC", "an unexpected error occurred while trying to manage the payout"}
	PayoutCreate       = Class{122, "BITPAY-PAYOUT-CREATE", "failed to create payout"}
	PayoutQuery        = Class{123, "BITPAY-PAYOUT-GET", "failed to retrieve payout"}
	PayoutCancel       = Class{124, "BITPAY-PAYOUT-CANCEL", "failed to cancel payout"}
	PayoutNotification = Class{126, "BITPAY-PAYOUT-NOTIFICATION", "failed to send payout notification"}

	LedgerGeneric = Class{131, "BITPAY-LEDGER-GENERIC", "an unexpected error occurred while trying to manage the ledger"}
	LedgerQuery   = Class{132, "BITPAY-LEDGER-GET", "failed to retrieve ledger"}

	RateGeneric = Class{141, "BITPAY-RATES-GENERIC", "an unexpected error occurred while trying to manage the rates"}
	RateQuery   = Class{142, "BITPAY-RATES-GET", "failed to retrieve rates"}

	SettlementGeneric = Class{151, "BITPAY-SETTLEMENTS-GENERIC", "an unexpected error occurred while trying to manage the settlements"}
	SettlementQuery   = Class{152, "BITPAY-SETTLEMENTS-GET", "failed to retrieve settlements"}

	RefundGeneric      = Class{161, "BITPAY-REFUND-GENERIC", "an unexpected error occurred while trying to manage the refund"}
	RefundCreate       = Class{162, "BITPAY-REFUND-CREATE", "failed to create refund"}
	RefundQuery        = Class{163, "BITPAY-REFUND-GET", "failed to retrieve refund"}
	RefundUpdate       = Class{164, "BITPAY-REFUND-UPDATE", "failed to update refund"}
	RefundCancel       = Class{165, "BITPAY-REFUND-CANCEL", "failed to cancel refund"}
	RefundNotification = Class{166, "BITPAY-REFUND-NOTIFICATION", "failed to send refund notification"}

	WalletGeneric = Class{181, "BITPAY-WALLET-GENERIC", "an unexpected error occurred while trying to manage the wallet"}
	WalletQuery   = Class{182, "BITPAY-WALLET-GET", "failed to retrieve supported wallets"}

	RecipientGeneric      = Class{191, "BITPAY-PAYOUT-RECIPIENT-GENERIC", "an unexpected error occurred while trying to manage the payout recipient"}
	RecipientCreate       = Class{192, "BITPAY-PAYOUT-RECIPIENT-CREATE", "failed to submit payout recipient"}
	RecipientQuery        = Class{193, "BITPAY-PAYOUT-RECIPIENT-GET", "failed to retrieve payout recipient"}
	RecipientUpdate       = Class{194, "BITPAY-PAYOUT-RECIPIENT-UPDATE", "failed to update payout recipient"}
	RecipientDelete       = Class{195, "BITPAY-PAYOUT-RECIPIENT-DELETE", "failed to delete payout recipient"}
	RecipientNotification = Class{196, "BITPAY-PAYOUT-RECIPIENT-NOTIFICATION", "failed to send payout recipient notification"}
)
