package catalog

import (
	"encoding/json"

	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

var nodeSpecs = []command.Spec{
	{
		Name:        Prefix + "info",
		Description: "Get cln node info",
		Build: func(*command.Binder) command.Request {
			return lightning.GetinfoRequest{}
		},
	},
	{
		Name:        Prefix + "get_connection_string",
		Description: "Get this node's connection string",
		Build: func(*command.Binder) command.Request {
			return lightning.GetinfoRequest{}
		},
		Render: renderConnectionString,
	},
	{
		Name:        Prefix + "ping",
		Description: "Check if a node is up",
		Build: func(b *command.Binder) command.Request {
			return lightning.PingRequest{
				ID:        command.Required(b, "id", decode.PublicKeyType, "The node id"),
				Len:       command.Optional(b, "len", decode.Uint16Type, "The length of the ping"),
				Pongbytes: command.Optional(b, "pongbytes", decode.Uint16Type, "The length of the reply"),
			}
		},
	},
	{
		Name:        Prefix + "connect",
		Description: "Connect to a peer",
		Build: func(b *command.Binder) command.Request {
			cs := command.Required(b, "connection_string", decode.ConnectionStringType, "The connection string of the peer")
			req := lightning.ConnectRequest{ID: cs.ID, Host: &cs.Host}
			if cs.Port != 0 {
				req.Port = &cs.Port
			}
			return req
		},
	},
	{
		Name:        Prefix + "disconnect",
		Description: "Disconnect from another lightning node",
		Build: func(b *command.Binder) command.Request {
			return lightning.DisconnectRequest{
				ID:    command.Required(b, "id", decode.PublicKeyType, "The public key of the peer"),
				Force: command.Optional(b, "force", decode.BoolType, "Force disconnect even with an active channel"),
			}
		},
	},
	{
		Name:        Prefix + "listpeers",
		Description: "Get peer info",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListpeersRequest{
				ID:    command.Optional(b, "id", decode.PublicKeyType, "The ID of the peer"),
				Level: command.Optional(b, "level", logLevels, "The level of detail"),
			}
		},
	},
	{
		Name:        Prefix + "addgossip",
		Description: "Inject a gossip message into the gossip daemon",
		Build: func(b *command.Binder) command.Request {
			return lightning.AddgossipRequest{
				Message: command.Required(b, "message", decode.StringType, "The hex-encoded gossip message"),
			}
		},
	},
	{
		Name:        Prefix + "sendcustommsg",
		Description: "Low-level interface to send protocol messages to peers",
		Build: func(b *command.Binder) command.Request {
			return lightning.SendcustommsgRequest{
				NodeID: command.Required(b, "node_id", decode.PublicKeyType, "The public key of the peer"),
				Msg:    command.Required(b, "msg", decode.StringType, "The custom message to send"),
			}
		},
	},
	{
		Name:        Prefix + "signmessage",
		Description: "Create a digital signature of a message using this node's secret key",
		Build: func(b *command.Binder) command.Request {
			return lightning.SignmessageRequest{
				Message: command.Required(b, "message", decode.StringType, "The message to sign"),
			}
		},
	},
	{
		Name:        Prefix + "checkmessage",
		Description: "Check if a signature is from a node",
		Build: func(b *command.Binder) command.Request {
			return lightning.CheckmessageRequest{
				Message: command.Required(b, "message", decode.StringType, "The message to check"),
				Zbase:   command.Required(b, "zbase", decode.StringType, "The signature of the message"),
				PubKey:  command.Optional(b, "pubkey", decode.PublicKeyType, "The public key of the node"),
			}
		},
	},
	{
		Name:        Prefix + "decode",
		Description: "Checks and parses an invoice string",
		Build: func(b *command.Binder) command.Request {
			return lightning.DecodeRequest{
				String: command.Required(b, "invstring", decode.StringType, "The invoice string"),
			}
		},
	},
	{
		Name:        Prefix + "decodepay",
		Description: "Checks and parses a bolt11 string",
		Build: func(b *command.Binder) command.Request {
			return lightning.DecodepayRequest{
				Bolt11:      command.Required(b, "bolt11", decode.StringType, "The bolt11 string"),
				Description: command.Optional(b, "description", decode.StringType, "The description of the purpose of the purchase"),
			}
		},
	},
	{
		Name:        Prefix + "feerates",
		Description: "Command for querying recommended onchain feerates",
		Build: func(b *command.Binder) command.Request {
			return lightning.FeeratesRequest{
				Style: command.Required(b, "style", feerateStyles, "The style of feerate (either 'perkw' or 'perkb')"),
			}
		},
	},
	{
		Name:        Prefix + "staticbackup",
		Description: "Get SCB of all the existing channels",
		Build: func(*command.Binder) command.Request {
			return lightning.StaticbackupRequest{}
		},
	},
	{
		Name:        Prefix + "stop",
		Description: "Command to shutdown the Core Lightning node",
		Build: func(*command.Binder) command.Request {
			return lightning.StopRequest{}
		},
	},
}

func renderConnectionString(result json.RawMessage) (string, error) {
	info, err := lightning.ParseInfo(result)
	if err != nil {
		return "", err
	}
	return info.ConnectionString()
}
