package catalog

import (
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

var paymentSpecs = []command.Spec{
	{
		Name:        Prefix + "pay",
		Description: "Send a payment to a BOLT11 invoice",
		Build: func(b *command.Binder) command.Request {
			return lightning.PayRequest{
				Bolt11:        command.Required(b, "bolt11", decode.StringType, "The BOLT11 invoice to pay"),
				AmountMsat:    command.Optional(b, "amount_msat", decode.AmountType, "The amount to pay in millisatoshis"),
				Label:         command.Optional(b, "label", decode.StringType, "A label for the payment"),
				Riskfactor:    command.Default(b, "riskfactor", decode.Float64Type, 10.0, "Risk factor for route calculation"),
				Maxfeepercent: command.Default(b, "maxfeepercent", decode.Float64Type, 0.5, "Maximum fee as a percentage of the amount"),
				RetryFor:      command.Default(b, "retry_for", decode.Uint16Type, uint16(60), "Time in seconds to keep retrying the payment"),
				Maxdelay:      command.Optional(b, "maxdelay", decode.Uint16Type, "Maximum delay for the payment in blocks"),
				Exemptfee:     command.Default(b, "exemptfee", decode.AmountType, lightning.Msat(5000), "Fee exemption amount in millisatoshis"),
				Localinvreqid: command.Optional(b, "localinvreqid", decode.StringType, "Local invoice request id"),
				Exclude:       command.OptionalSlice(b, "exclude", decode.StringType, "Channels or nodes to exclude from the route"),
				Maxfee:        command.Optional(b, "maxfee", decode.AmountType, "Maximum fee in millisatoshis"),
				Description:   command.Optional(b, "description", decode.StringType, "Description of the payment"),
			}
		},
	},
	{
		Name:        Prefix + "keysend",
		Description: "Send funds to a node without an invoice",
		Build: func(b *command.Binder) command.Request {
			return lightning.KeysendRequest{
				Destination:   command.Required(b, "destination", decode.PublicKeyType, "The node ID of the node that the payment should go to"),
				AmountMsat:    command.Required(b, "amount_msat", decode.AmountType, "The amount to send in millisatoshi precision"),
				Label:         command.Optional(b, "label", decode.StringType, "A label to attach to the payment"),
				Maxfeepercent: command.Optional(b, "maxfeepercent", decode.Float64Type, "Maximum fee as a percentage of the amount"),
				RetryFor:      command.Optional(b, "retry_for", decode.Uint32Type, "Time in seconds to keep retrying the payment"),
				Maxdelay:      command.Optional(b, "maxdelay", decode.Uint32Type, "Maximum delay for the payment in blocks"),
				Exemptfee:     command.Optional(b, "exemptfee", decode.AmountType, "Fee exemption amount"),
				Routehints:    value(command.Optional(b, "routehints", decode.RouteHintListType, "Route hints as JSON")),
				Extratlvs:     value(command.Optional(b, "extratlvs", decode.TlvStreamType, "Extra TLV records as JSON")),
			}
		},
	},
	{
		Name:        Prefix + "getroute",
		Description: "Get the best route for a payment",
		Build: func(b *command.Binder) command.Request {
			return lightning.GetrouteRequest{
				ID:          command.Required(b, "id", decode.PublicKeyType, "The public key of the peer"),
				AmountMsat:  command.Required(b, "amount_msat", decode.AmountType, "The amount in millisatoshi"),
				Riskfactor:  command.Required(b, "riskfactor", decode.Uint64Type, "The risk factor for the route"),
				Cltv:        command.Optional(b, "cltv", decode.Uint32Type, "The final CLTV delta"),
				FromID:      command.Optional(b, "fromid", decode.PublicKeyType, "The node to start the route from"),
				Fuzzpercent: command.Optional(b, "fuzzpercent", decode.Uint32Type, "Fee fuzz percentage"),
				Exclude:     command.OptionalSlice(b, "exclude", decode.StringType, "Channels or nodes to exclude"),
				Maxhops:     command.Optional(b, "maxhops", decode.Uint32Type, "Maximum number of hops"),
			}
		},
	},
	{
		Name:        Prefix + "sendpay",
		Description: "Send a payment",
		Build: func(b *command.Binder) command.Request {
			return lightning.SendpayRequest{
				Route:         command.Required(b, "route", sendpayRoutes, "The route for the payment"),
				PaymentHash:   command.Required(b, "payment_hash", decode.HashType, "The payment hash"),
				Label:         command.Optional(b, "label", decode.StringType, "The label for the payment"),
				AmountMsat:    command.Optional(b, "amount_msat", decode.AmountType, "The amount in millisatoshis"),
				Bolt11:        command.Optional(b, "bolt11", decode.StringType, "The bolt11 invoice"),
				PaymentSecret: command.Optional(b, "payment_secret", decode.SecretType, "The payment secret"),
				Partid:        command.Optional(b, "partid", decode.Uint16Type, "The partid"),
				Localinvreqid: command.Optional(b, "localinvreqid", decode.StringType, "The local invoice request id"),
				Groupid:       command.Optional(b, "groupid", decode.Uint64Type, "The group id"),
			}
		},
	},
	{
		Name:        Prefix + "waitsendpay",
		Description: "Wait for the status of an outgoing payment",
		Build: func(b *command.Binder) command.Request {
			return lightning.WaitsendpayRequest{
				PaymentHash: command.Required(b, "payment_hash", decode.HashType, "The payment hash to use as a challenge"),
				Timeout:     command.Optional(b, "timeout", decode.Uint32Type, "The timeout in seconds"),
				Partid:      command.Optional(b, "partid", decode.Uint64Type, "The partid value for parallel partial payments"),
				Groupid:     command.Optional(b, "groupid", decode.Uint64Type, "The groupid value for parallel partial payments"),
			}
		},
	},
	{
		Name:        Prefix + "createonion",
		Description: "Create a custom onion",
		Build: func(b *command.Binder) command.Request {
			return lightning.CreateonionRequest{
				Hops:       command.Required(b, "hops", onionHops, "The hops for the onion"),
				Assocdata:  command.Required(b, "assocdata", decode.StringType, "The associated data for the onion"),
				SessionKey: command.Optional(b, "session_key", decode.SecretType, "The session key for the onion"),
				OnionSize:  command.Optional(b, "onion_size", decode.Uint16Type, "The size of the onion"),
			}
		},
	},
	{
		Name:        Prefix + "sendonion",
		Description: "Send a payment with a custom onion packet",
		Build: func(b *command.Binder) command.Request {
			return lightning.SendonionRequest{
				Onion:         command.Required(b, "onion", decode.StringType, "The custom onion packet"),
				FirstHop:      command.Required(b, "first_hop", decode.FirstHopType, "The first hop to send the onion to"),
				PaymentHash:   command.Required(b, "payment_hash", decode.HashType, "The payment hash to use as a challenge"),
				Label:         command.Optional(b, "label", decode.StringType, "A human readable reference for the payment"),
				SharedSecrets: command.OptionalSlice(b, "shared_secrets", decode.SecretType, "The shared secrets used when creating the onion"),
				Partid:        command.Optional(b, "partid", decode.Uint16Type, "The partid value for parallel partial payments"),
				Bolt11:        command.Optional(b, "bolt11", decode.StringType, "The bolt11 parameter to be returned in results"),
				AmountMsat:    command.Optional(b, "amount_msat", decode.AmountType, "The amount_msat parameter to annotate the payment"),
				Destination:   command.Optional(b, "destination", decode.PublicKeyType, "The destination parameter to be returned in results"),
				Localinvreqid: command.Optional(b, "localinvreqid", decode.HashType, "The local invoice request id"),
				Groupid:       command.Optional(b, "groupid", decode.Uint64Type, "The group id"),
			}
		},
	},
	{
		Name:        Prefix + "listpays",
		Description: "Get payment status",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListpaysRequest{
				Bolt11:      command.Optional(b, "bolt11", decode.StringType, "The bolt11 invoice"),
				PaymentHash: command.Optional(b, "payment_hash", decode.HashType, "The payment hash"),
				Status:      command.Optional(b, "status", payStatuses, "The payment status"),
			}
		},
	},
	{
		Name:        Prefix + "listsendpays",
		Description: "List the status of all sendpay commands",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListsendpaysRequest{
				Bolt11:      command.Optional(b, "bolt11", decode.StringType, "The bolt11 parameter to be returned in results"),
				PaymentHash: command.Optional(b, "payment_hash", decode.HashType, "The payment hash to use as a challenge"),
				Status:      command.Optional(b, "status", payStatuses, "The status of the payment"),
			}
		},
	},
	{
		Name:        Prefix + "preapproveinvoice",
		Description: "Ask the HSM to preapprove an invoice",
		Build: func(b *command.Binder) command.Request {
			bolt11 := command.Required(b, "bolt11", decode.StringType, "The bolt11 invoice")
			return lightning.PreapproveinvoiceRequest{Bolt11: &bolt11}
		},
	},
	{
		Name:        Prefix + "preapprovekeysend",
		Description: "Ask the HSM to preapprove a keysend payment",
		Build: func(b *command.Binder) command.Request {
			dest := command.Required(b, "destination", decode.PublicKeyType, "The public key of the destination node")
			hash := command.Required(b, "payment_hash", decode.StringType, "The unique identifier of a payment")
			amount := command.Required(b, "amount_msat", decode.AmountType, "The amount to send in millisatoshi precision")
			return lightning.PreapprovekeysendRequest{Destination: &dest, PaymentHash: &hash, AmountMsat: &amount}
		},
	},
}
