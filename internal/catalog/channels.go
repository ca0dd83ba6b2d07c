package catalog

import (
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

var channelSpecs = []command.Spec{
	{
		Name:        Prefix + "fundchannel",
		Description: "Open a payment channel with a peer",
		Build: func(b *command.Binder) command.Request {
			return lightning.FundchannelRequest{
				ID:           command.Required(b, "id", decode.PublicKeyType, "The public key of the peer"),
				Amount:       command.Required(b, "amount", decode.AmountOrAllType, "The amount to fund the channel with"),
				Feerate:      command.Default(b, "feerate", decode.FeerateType, lightning.FeeratePerKb(1000), "Fee rate for the funding transaction"),
				Announce:     command.Optional(b, "announce", decode.BoolType, "Whether to announce this channel"),
				Minconf:      command.Optional(b, "minconf", decode.Uint32Type, "Minimum number of confirmations"),
				PushMsat:     command.Optional(b, "push_msat", decode.AmountType, "Amount in millisatoshis to push to the peer"),
				CloseTo:      command.Optional(b, "close_to", decode.StringType, "Address to close channel to"),
				RequestAmt:   command.Optional(b, "request_amt", decode.AmountType, "Amount requested by the other side of the channel"),
				CompactLease: command.Optional(b, "compact_lease", decode.StringType, "Compact lease of the channel"),
				Utxos:        command.OptionalSlice(b, "utxos", decode.OutpointType, "The utxos to use for the channel"),
				Mindepth:     command.Optional(b, "mindepth", decode.Uint32Type, "Minimum depth for the funding transaction"),
				Reserve:      command.Optional(b, "reserve", decode.AmountType, "Reserve amount for the channel"),
			}
		},
	},
	{
		Name:        Prefix + "close",
		Description: "Close a channel with a direct peer",
		Build: func(b *command.Binder) command.Request {
			return lightning.CloseRequest{
				ID:                 command.Required(b, "id", decode.StringType, "The id of the channel or peer"),
				UnilateralTimeout:  command.Optional(b, "unilateraltimeout", decode.Uint32Type, "The unilateral timeout in seconds"),
				Destination:        command.Optional(b, "destination", decode.StringType, "The destination address for the to-local output"),
				FeeNegotiationStep: command.Optional(b, "fee_negotiation_step", decode.StringType, "The step for fee negotiation"),
				WrongFunding:       command.Optional(b, "wrong_funding", decode.OutpointType, "The wrong funding transaction id and output number"),
				ForceLeaseClosed:   command.Optional(b, "force_lease_closed", decode.BoolType, "Force close of leased funds"),
				Feerange:           command.OptionalSlice(b, "feerange", decode.FeerateType, "The minimum and maximum feerates to offer"),
			}
		},
	},
	{
		Name:        Prefix + "setchannel",
		Description: "Set channel fees and HTLC limits",
		Build: func(b *command.Binder) command.Request {
			return lightning.SetchannelRequest{
				ID:              command.Required(b, "id", decode.StringType, "The peer id, channel id or short channel id"),
				Feebase:         command.Optional(b, "feebase", decode.AmountType, "Base fee to add to any routed payment"),
				Feeppm:          command.Optional(b, "feeppm", decode.Uint32Type, "Fee added proportionally per-millionths to any routed payment volume"),
				Htlcmin:         command.Optional(b, "htlcmin", decode.AmountType, "Limits how small an HTLC will be forwarded"),
				Htlcmax:         command.Optional(b, "htlcmax", decode.AmountType, "Limits how large an HTLC will be forwarded"),
				Enforcedelay:    command.Optional(b, "enforcedelay", decode.Uint32Type, "Delay before enforcing the new fees/htlc max"),
				Ignorefeelimits: command.Optional(b, "ignorefeelimits", decode.BoolType, "Ignore the limits set by other peers"),
			}
		},
	},
	{
		Name:        Prefix + "listchannels",
		Description: "Query active lightning channels in the network",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListchannelsRequest{
				ShortChannelID: command.Optional(b, "short_channel_id", decode.ShortChannelIDType, "The short channel id"),
				Source:         command.Optional(b, "source", decode.PublicKeyType, "The source node id"),
				Destination:    command.Optional(b, "destination", decode.PublicKeyType, "The destination node id"),
			}
		},
	},
	{
		Name:        Prefix + "listpeerchannels",
		Description: "Get peer channels",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListpeerchannelsRequest{
				ID: command.Optional(b, "id", decode.PublicKeyType, "The public key of the peer"),
			}
		},
	},
	{
		Name:        Prefix + "listclosedchannels",
		Description: "Get data on our closed historical channels",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListclosedchannelsRequest{
				ID: command.Optional(b, "id", decode.PublicKeyType, "The public key of the peer"),
			}
		},
	},
	{
		Name:        Prefix + "listforwards",
		Description: "Get information about all HTLCs",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListforwardsRequest{
				Status:     command.Optional(b, "status", forwardStatuses, "The status of the forwards"),
				InChannel:  command.Optional(b, "in_channel", decode.ShortChannelIDType, "The incoming channel"),
				OutChannel: command.Optional(b, "out_channel", decode.ShortChannelIDType, "The outgoing channel"),
			}
		},
	},
	{
		Name:        Prefix + "listhtlcs",
		Description: "Get all HTLCs",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListhtlcsRequest{
				ID: command.Optional(b, "id", decode.StringType, "The channel id or short channel id"),
			}
		},
	},
}
