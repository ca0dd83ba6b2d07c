package lightning

// Request parameter objects for the node methods botimint exposes. Optional
// parameters are pointers or nil slices and are left out of the params
// object when unset, so the node applies its own defaults.

type AddgossipRequest struct {
	Message string `json:"message"`
}

func (AddgossipRequest) Method() string { return "addgossip" }

type AutocleanInvoiceRequest struct {
	ExpiredBy    *uint64 `json:"expired_by,omitempty"`
	CycleSeconds *uint64 `json:"cycle_seconds,omitempty"`
}

func (AutocleanInvoiceRequest) Method() string { return "autoclean-invoice" }

type CheckmessageRequest struct {
	Message string     `json:"message"`
	Zbase   string     `json:"zbase"`
	PubKey  *PublicKey `json:"pubkey,omitempty"`
}

func (CheckmessageRequest) Method() string { return "checkmessage" }

type CloseRequest struct {
	ID                 string    `json:"id"`
	UnilateralTimeout  *uint32   `json:"unilateraltimeout,omitempty"`
	Destination        *string   `json:"destination,omitempty"`
	FeeNegotiationStep *string   `json:"fee_negotiation_step,omitempty"`
	WrongFunding       *Outpoint `json:"wrong_funding,omitempty"`
	ForceLeaseClosed   *bool     `json:"force_lease_closed,omitempty"`
	Feerange           []Feerate `json:"feerange,omitempty"`
}

func (CloseRequest) Method() string { return "close" }

type ConnectRequest struct {
	ID   PublicKey `json:"id"`
	Host *string   `json:"host,omitempty"`
	Port *uint16   `json:"port,omitempty"`
}

func (ConnectRequest) Method() string { return "connect" }

type CreateinvoiceRequest struct {
	Invstring string `json:"invstring"`
	Label     string `json:"label"`
	Preimage  string `json:"preimage"`
}

func (CreateinvoiceRequest) Method() string { return "createinvoice" }

type CreateonionRequest struct {
	Hops       []OnionHop `json:"hops"`
	Assocdata  string     `json:"assocdata"`
	SessionKey *Secret    `json:"session_key,omitempty"`
	OnionSize  *uint16    `json:"onion_size,omitempty"`
}

func (CreateonionRequest) Method() string { return "createonion" }

type DatastoreRequest struct {
	Key        []string       `json:"key"`
	String     *string        `json:"string,omitempty"`
	Hex        *string        `json:"hex,omitempty"`
	Mode       *DatastoreMode `json:"mode,omitempty"`
	Generation *uint64        `json:"generation,omitempty"`
}

func (DatastoreRequest) Method() string { return "datastore" }

type DecodeRequest struct {
	String string `json:"string"`
}

func (DecodeRequest) Method() string { return "decode" }

type DecodepayRequest struct {
	Bolt11      string  `json:"bolt11"`
	Description *string `json:"description,omitempty"`
}

func (DecodepayRequest) Method() string { return "decodepay" }

type DeldatastoreRequest struct {
	Key        []string `json:"key"`
	Generation *uint64  `json:"generation,omitempty"`
}

func (DeldatastoreRequest) Method() string { return "deldatastore" }

type DelexpiredinvoiceRequest struct {
	MaxExpiryTime *uint64 `json:"maxexpirytime,omitempty"`
}

func (DelexpiredinvoiceRequest) Method() string { return "delexpiredinvoice" }

type DelinvoiceRequest struct {
	Label    string        `json:"label"`
	Status   InvoiceStatus `json:"status"`
	DescOnly *bool         `json:"desconly,omitempty"`
}

func (DelinvoiceRequest) Method() string { return "delinvoice" }

type DisconnectRequest struct {
	ID    PublicKey `json:"id"`
	Force *bool     `json:"force,omitempty"`
}

func (DisconnectRequest) Method() string { return "disconnect" }

type FeeratesRequest struct {
	Style FeerateStyle `json:"style"`
}

func (FeeratesRequest) Method() string { return "feerates" }

type FundchannelRequest struct {
	ID           PublicKey   `json:"id"`
	Amount       AmountOrAll `json:"amount"`
	Feerate      Feerate     `json:"feerate"`
	Announce     *bool       `json:"announce,omitempty"`
	Minconf      *uint32     `json:"minconf,omitempty"`
	PushMsat     *Amount     `json:"push_msat,omitempty"`
	CloseTo      *string     `json:"close_to,omitempty"`
	RequestAmt   *Amount     `json:"request_amt,omitempty"`
	CompactLease *string     `json:"compact_lease,omitempty"`
	Utxos        []Outpoint  `json:"utxos,omitempty"`
	Mindepth     *uint32     `json:"mindepth,omitempty"`
	Reserve      *Amount     `json:"reserve,omitempty"`
}

func (FundchannelRequest) Method() string { return "fundchannel" }

type FundpsbtRequest struct {
	Satoshi              AmountOrAll `json:"satoshi"`
	Feerate              Feerate     `json:"feerate"`
	Startweight          uint32      `json:"startweight"`
	Minconf              *uint32     `json:"minconf,omitempty"`
	Reserve              *uint32     `json:"reserve,omitempty"`
	Locktime             *uint32     `json:"locktime,omitempty"`
	MinWitnessWeight     *uint32     `json:"min_witness_weight,omitempty"`
	ExcessAsChange       *bool       `json:"excess_as_change,omitempty"`
	Nonwrapped           *bool       `json:"nonwrapped,omitempty"`
	OpeningAnchorChannel *bool       `json:"opening_anchor_channel,omitempty"`
}

func (FundpsbtRequest) Method() string { return "fundpsbt" }

type GetinfoRequest struct{}

func (GetinfoRequest) Method() string { return "getinfo" }

type GetrouteRequest struct {
	ID          PublicKey  `json:"id"`
	AmountMsat  Amount     `json:"amount_msat"`
	Riskfactor  uint64     `json:"riskfactor"`
	Cltv        *uint32    `json:"cltv,omitempty"`
	FromID      *PublicKey `json:"fromid,omitempty"`
	Fuzzpercent *uint32    `json:"fuzzpercent,omitempty"`
	Exclude     []string   `json:"exclude,omitempty"`
	Maxhops     *uint32    `json:"maxhops,omitempty"`
}

func (GetrouteRequest) Method() string { return "getroute" }

type InvoiceRequest struct {
	AmountMsat   AmountOrAny `json:"amount_msat"`
	Label        string      `json:"label"`
	Description  string      `json:"description"`
	Expiry       *uint64     `json:"expiry,omitempty"`
	Fallbacks    []string    `json:"fallbacks,omitempty"`
	Preimage     *string     `json:"preimage,omitempty"`
	Cltv         *uint32     `json:"cltv,omitempty"`
	Deschashonly *bool       `json:"deschashonly,omitempty"`
}

func (InvoiceRequest) Method() string { return "invoice" }

type KeysendRequest struct {
	Destination   PublicKey     `json:"destination"`
	AmountMsat    Amount        `json:"amount_msat"`
	Label         *string       `json:"label,omitempty"`
	Maxfeepercent *float64      `json:"maxfeepercent,omitempty"`
	RetryFor      *uint32       `json:"retry_for,omitempty"`
	Maxdelay      *uint32       `json:"maxdelay,omitempty"`
	Exemptfee     *Amount       `json:"exemptfee,omitempty"`
	Routehints    RouteHintList `json:"routehints,omitempty"`
	Extratlvs     TlvStream     `json:"extratlvs,omitempty"`
}

func (KeysendRequest) Method() string { return "keysend" }

type ListchannelsRequest struct {
	ShortChannelID *ShortChannelID `json:"short_channel_id,omitempty"`
	Source         *PublicKey      `json:"source,omitempty"`
	Destination    *PublicKey      `json:"destination,omitempty"`
}

func (ListchannelsRequest) Method() string { return "listchannels" }

type ListclosedchannelsRequest struct {
	ID *PublicKey `json:"id,omitempty"`
}

func (ListclosedchannelsRequest) Method() string { return "listclosedchannels" }

type ListdatastoreRequest struct {
	Key []string `json:"key,omitempty"`
}

func (ListdatastoreRequest) Method() string { return "listdatastore" }

type ListforwardsRequest struct {
	Status     *ForwardStatus  `json:"status,omitempty"`
	InChannel  *ShortChannelID `json:"in_channel,omitempty"`
	OutChannel *ShortChannelID `json:"out_channel,omitempty"`
}

func (ListforwardsRequest) Method() string { return "listforwards" }

type ListfundsRequest struct {
	Spent bool `json:"spent"`
}

func (ListfundsRequest) Method() string { return "listfunds" }

type ListhtlcsRequest struct {
	ID *string `json:"id,omitempty"`
}

func (ListhtlcsRequest) Method() string { return "listhtlcs" }

type ListinvoicesRequest struct {
	Label       *string       `json:"label,omitempty"`
	Invstring   *string       `json:"invstring,omitempty"`
	PaymentHash *string       `json:"payment_hash,omitempty"`
	OfferID     *string       `json:"offer_id,omitempty"`
	Index       *InvoiceIndex `json:"index,omitempty"`
	Start       *uint64       `json:"start,omitempty"`
	Limit       *uint32       `json:"limit,omitempty"`
}

func (ListinvoicesRequest) Method() string { return "listinvoices" }

type ListpaysRequest struct {
	Bolt11      *string    `json:"bolt11,omitempty"`
	PaymentHash *Hash      `json:"payment_hash,omitempty"`
	Status      *PayStatus `json:"status,omitempty"`
}

func (ListpaysRequest) Method() string { return "listpays" }

type ListpeerchannelsRequest struct {
	ID *PublicKey `json:"id,omitempty"`
}

func (ListpeerchannelsRequest) Method() string { return "listpeerchannels" }

type ListpeersRequest struct {
	ID    *PublicKey `json:"id,omitempty"`
	Level *LogLevel  `json:"level,omitempty"`
}

func (ListpeersRequest) Method() string { return "listpeers" }

type ListsendpaysRequest struct {
	Bolt11      *string    `json:"bolt11,omitempty"`
	PaymentHash *Hash      `json:"payment_hash,omitempty"`
	Status      *PayStatus `json:"status,omitempty"`
}

func (ListsendpaysRequest) Method() string { return "listsendpays" }

type ListtransactionsRequest struct{}

func (ListtransactionsRequest) Method() string { return "listtransactions" }

type NewaddrRequest struct {
	AddressType AddressType `json:"addresstype"`
}

func (NewaddrRequest) Method() string { return "newaddr" }

type PayRequest struct {
	Bolt11        string   `json:"bolt11"`
	AmountMsat    *Amount  `json:"amount_msat,omitempty"`
	Label         *string  `json:"label,omitempty"`
	Riskfactor    float64  `json:"riskfactor"`
	Maxfeepercent float64  `json:"maxfeepercent"`
	RetryFor      uint16   `json:"retry_for"`
	Maxdelay      *uint16  `json:"maxdelay,omitempty"`
	Exemptfee     Amount   `json:"exemptfee"`
	Localinvreqid *string  `json:"localinvreqid,omitempty"`
	Exclude       []string `json:"exclude,omitempty"`
	Maxfee        *Amount  `json:"maxfee,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

func (PayRequest) Method() string { return "pay" }

type PingRequest struct {
	ID        PublicKey `json:"id"`
	Len       *uint16   `json:"len,omitempty"`
	Pongbytes *uint16   `json:"pongbytes,omitempty"`
}

func (PingRequest) Method() string { return "ping" }

type PreapproveinvoiceRequest struct {
	Bolt11 *string `json:"bolt11,omitempty"`
}

func (PreapproveinvoiceRequest) Method() string { return "preapproveinvoice" }

type PreapprovekeysendRequest struct {
	Destination *PublicKey `json:"destination,omitempty"`
	PaymentHash *string    `json:"payment_hash,omitempty"`
	AmountMsat  *Amount    `json:"amount_msat,omitempty"`
}

func (PreapprovekeysendRequest) Method() string { return "preapprovekeysend" }

type SendcustommsgRequest struct {
	NodeID PublicKey `json:"node_id"`
	Msg    string    `json:"msg"`
}

func (SendcustommsgRequest) Method() string { return "sendcustommsg" }

type SendonionRequest struct {
	Onion         string     `json:"onion"`
	FirstHop      FirstHop   `json:"first_hop"`
	PaymentHash   Hash       `json:"payment_hash"`
	Label         *string    `json:"label,omitempty"`
	SharedSecrets []Secret   `json:"shared_secrets,omitempty"`
	Partid        *uint16    `json:"partid,omitempty"`
	Bolt11        *string    `json:"bolt11,omitempty"`
	AmountMsat    *Amount    `json:"amount_msat,omitempty"`
	Destination   *PublicKey `json:"destination,omitempty"`
	Localinvreqid *Hash      `json:"localinvreqid,omitempty"`
	Groupid       *uint64    `json:"groupid,omitempty"`
}

func (SendonionRequest) Method() string { return "sendonion" }

type SendpayRequest struct {
	Route         []SendpayRoute `json:"route"`
	PaymentHash   Hash           `json:"payment_hash"`
	Label         *string        `json:"label,omitempty"`
	AmountMsat    *Amount        `json:"amount_msat,omitempty"`
	Bolt11        *string        `json:"bolt11,omitempty"`
	PaymentSecret *Secret        `json:"payment_secret,omitempty"`
	Partid        *uint16        `json:"partid,omitempty"`
	Localinvreqid *string        `json:"localinvreqid,omitempty"`
	Groupid       *uint64        `json:"groupid,omitempty"`
}

func (SendpayRequest) Method() string { return "sendpay" }

type SendpsbtRequest struct {
	Psbt    string `json:"psbt"`
	Reserve *bool  `json:"reserve,omitempty"`
}

func (SendpsbtRequest) Method() string { return "sendpsbt" }

type SetchannelRequest struct {
	ID              string  `json:"id"`
	Feebase         *Amount `json:"feebase,omitempty"`
	Feeppm          *uint32 `json:"feeppm,omitempty"`
	Htlcmin         *Amount `json:"htlcmin,omitempty"`
	Htlcmax         *Amount `json:"htlcmax,omitempty"`
	Enforcedelay    *uint32 `json:"enforcedelay,omitempty"`
	Ignorefeelimits *bool   `json:"ignorefeelimits,omitempty"`
}

func (SetchannelRequest) Method() string { return "setchannel" }

type SigninvoiceRequest struct {
	Invstring string `json:"invstring"`
}

func (SigninvoiceRequest) Method() string { return "signinvoice" }

type SignmessageRequest struct {
	Message string `json:"message"`
}

func (SignmessageRequest) Method() string { return "signmessage" }

type SignpsbtRequest struct {
	Psbt     string   `json:"psbt"`
	Signonly []uint32 `json:"signonly,omitempty"`
}

func (SignpsbtRequest) Method() string { return "signpsbt" }

type StaticbackupRequest struct{}

func (StaticbackupRequest) Method() string { return "staticbackup" }

type StopRequest struct{}

func (StopRequest) Method() string { return "stop" }

type TxprepareRequest struct {
	Outputs []OutputDesc `json:"outputs"`
	Feerate *Feerate     `json:"feerate,omitempty"`
	Minconf *uint32      `json:"minconf,omitempty"`
	Utxos   []Outpoint   `json:"utxos,omitempty"`
}

func (TxprepareRequest) Method() string { return "txprepare" }

type UtxopsbtRequest struct {
	Satoshi              Amount     `json:"satoshi"`
	Feerate              Feerate    `json:"feerate"`
	Startweight          uint32     `json:"startweight"`
	Utxos                []Outpoint `json:"utxos"`
	Reserve              *uint32    `json:"reserve,omitempty"`
	Reservedok           *bool      `json:"reservedok,omitempty"`
	Locktime             *uint32    `json:"locktime,omitempty"`
	MinWitnessWeight     *uint32    `json:"min_witness_weight,omitempty"`
	ExcessAsChange       *bool      `json:"excess_as_change,omitempty"`
	OpeningAnchorChannel *bool      `json:"opening_anchor_channel,omitempty"`
}

func (UtxopsbtRequest) Method() string { return "utxopsbt" }

type WaitanyinvoiceRequest struct {
	LastpayIndex *uint64 `json:"lastpay_index,omitempty"`
	Timeout      *uint64 `json:"timeout,omitempty"`
}

func (WaitanyinvoiceRequest) Method() string { return "waitanyinvoice" }

type WaitinvoiceRequest struct {
	Label string `json:"label"`
}

func (WaitinvoiceRequest) Method() string { return "waitinvoice" }

type WaitsendpayRequest struct {
	PaymentHash Hash    `json:"payment_hash"`
	Timeout     *uint32 `json:"timeout,omitempty"`
	Partid      *uint64 `json:"partid,omitempty"`
	Groupid     *uint64 `json:"groupid,omitempty"`
}

func (WaitsendpayRequest) Method() string { return "waitsendpay" }

type WithdrawRequest struct {
	Destination string      `json:"destination"`
	Satoshi     AmountOrAll `json:"satoshi"`
	Feerate     *Feerate    `json:"feerate,omitempty"`
	Minconf     *uint16     `json:"minconf,omitempty"`
	Utxos       []Outpoint  `json:"utxos,omitempty"`
}

func (WithdrawRequest) Method() string { return "withdraw" }
