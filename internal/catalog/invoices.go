package catalog

import (
	"github.com/google/uuid"

	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

// generatedLabel returns a fresh invoice label.
func generatedLabel() string {
	return "botimint-" + uuid.NewString()
}

var invoiceSpecs = []command.Spec{
	{
		Name:        Prefix + "invoice",
		Description: "Create an invoice for accepting payments",
		Build: func(b *command.Binder) command.Request {
			return lightning.InvoiceRequest{
				AmountMsat:   command.Required(b, "amount_msat", decode.AmountOrAnyType, "The amount in milli-satoshi"),
				Label:        command.Required(b, "label", decode.StringType, "The label of the invoice"),
				Description:  command.Required(b, "description", decode.StringType, "The description of the invoice"),
				Expiry:       command.Optional(b, "expiry", decode.Uint64Type, "The expiry time of the invoice"),
				Fallbacks:    command.OptionalSlice(b, "fallbacks", decode.StringType, "The fallback addresses"),
				Preimage:     command.Optional(b, "preimage", decode.StringType, "The preimage of the invoice"),
				Cltv:         command.Optional(b, "cltv", decode.Uint32Type, "The cltv value"),
				Deschashonly: command.Optional(b, "deschashonly", decode.BoolType, "Whether to only use the description hash"),
			}
		},
	},
	{
		Name:        Prefix + "createinvoice",
		Description: "Create a new invoice",
		Build: func(b *command.Binder) command.Request {
			return lightning.CreateinvoiceRequest{
				Invstring: command.Required(b, "invstring", decode.StringType, "The invoice string in bolt11 form"),
				Label:     command.DefaultFunc(b, "label", decode.StringType, generatedLabel, "botimint-<uuid>", "A unique label for the invoice"),
				Preimage:  command.Required(b, "preimage", decode.StringType, "The preimage for the invoice"),
			}
		},
	},
	{
		Name:        Prefix + "signinvoice",
		Description: "Sign an invoice",
		Build: func(b *command.Binder) command.Request {
			return lightning.SigninvoiceRequest{
				Invstring: command.Required(b, "invstring", decode.StringType, "The invoice string in bolt11 form"),
			}
		},
	},
	{
		Name:        Prefix + "listinvoices",
		Description: "Query the status of invoices",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListinvoicesRequest{
				Label:       command.Optional(b, "label", decode.StringType, "The label of the invoice"),
				Invstring:   command.Optional(b, "invstring", decode.StringType, "The string representing the invoice"),
				PaymentHash: command.Optional(b, "payment_hash", decode.StringType, "The payment hash of the invoice"),
				OfferID:     command.Optional(b, "offer_id", decode.StringType, "The local offer id this invoice was issued for"),
				Index:       command.Optional(b, "index", invoiceIndexes, "The index for listing invoices"),
				Start:       command.Optional(b, "start", decode.Uint64Type, "The start point for listing invoices"),
				Limit:       command.Optional(b, "limit", decode.Uint32Type, "The limit for listing invoices"),
			}
		},
	},
	{
		Name:        Prefix + "waitinvoice",
		Description: "Wait until a specific invoice is paid",
		Build: func(b *command.Binder) command.Request {
			return lightning.WaitinvoiceRequest{
				Label: command.Required(b, "label", decode.StringType, "The label of the invoice"),
			}
		},
	},
	{
		Name:        Prefix + "waitanyinvoice",
		Description: "Wait until an invoice is paid",
		Build: func(b *command.Binder) command.Request {
			return lightning.WaitanyinvoiceRequest{
				LastpayIndex: command.Optional(b, "lastpay_index", decode.Uint64Type, "The last pay index"),
				Timeout:      command.Optional(b, "timeout", decode.Uint64Type, "The timeout in seconds"),
			}
		},
	},
	{
		Name:        Prefix + "delinvoice",
		Description: "Remove an invoice or its description from the Core Lightning database",
		Build: func(b *command.Binder) command.Request {
			return lightning.DelinvoiceRequest{
				Label:    command.Required(b, "label", decode.StringType, "The label of the invoice"),
				Status:   command.Required(b, "status", invoiceStatuses, "The status of the invoice"),
				DescOnly: command.Optional(b, "desconly", decode.BoolType, "Whether to only remove the description"),
			}
		},
	},
	{
		Name:        Prefix + "delexpiredinvoice",
		Description: "Remove expired invoices from the Core Lightning database",
		Build: func(b *command.Binder) command.Request {
			return lightning.DelexpiredinvoiceRequest{
				MaxExpiryTime: command.Optional(b, "maxexpirytime", decode.Uint64Type, "The maximum expiry time for the invoices"),
			}
		},
	},
	{
		Name:        Prefix + "autoclean",
		Description: "Automatically clean up expired invoices",
		Build: func(b *command.Binder) command.Request {
			return lightning.AutocleanInvoiceRequest{
				ExpiredBy:    command.Optional(b, "expired_by", decode.Uint64Type, "The time in seconds that the invoice should be expired by"),
				CycleSeconds: command.Optional(b, "cycle_seconds", decode.Uint64Type, "The time in seconds between each autoclean"),
			}
		},
	},
}
