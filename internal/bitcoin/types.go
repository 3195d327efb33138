package bitcoin

// BlockchainInfo is the subset of getblockchaininfo the exporter reads.
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	Time                 int64   `json:"time"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
}

// NetworkInfo is the subset of getnetworkinfo the exporter reads.
type NetworkInfo struct {
	Version         int64  `json:"version"`
	Subversion      string `json:"subversion"`
	ProtocolVersion int64  `json:"protocolversion"`
	NetworkActive   bool   `json:"networkactive"`
	Connections     int64  `json:"connections"`
	ConnectionsIn   int64  `json:"connections_in"`
	ConnectionsOut  int64  `json:"connections_out"`
}

// NetTotals is the getnettotals result.
type NetTotals struct {
	TotalBytesRecv uint64 `json:"totalbytesrecv"`
	TotalBytesSent uint64 `json:"totalbytessent"`
	TimeMillis     int64  `json:"timemillis"`
}

// MemoryInfo is the getmemoryinfo result in the default "stats" mode.
type MemoryInfo struct {
	Locked LockedMemory `json:"locked"`
}

// LockedMemory describes the node's locked memory arena.
type LockedMemory struct {
	Used       uint64 `json:"used"`
	Free       uint64 `json:"free"`
	Total      uint64 `json:"total"`
	Locked     uint64 `json:"locked"`
	ChunksUsed uint64 `json:"chunks_used"`
	ChunksFree uint64 `json:"chunks_free"`
}

// MempoolInfo is the subset of getmempoolinfo the exporter reads.
type MempoolInfo struct {
	Loaded        bool    `json:"loaded"`
	Size          int64   `json:"size"`
	Bytes         int64   `json:"bytes"`
	Usage         int64   `json:"usage"`
	TotalFee      float64 `json:"total_fee"`
	MaxMempool    int64   `json:"maxmempool"`
	MempoolMinFee float64 `json:"mempoolminfee"`
	MinRelayTxFee float64 `json:"minrelaytxfee"`
}

// NodeAddress is one entry of the getnodeaddresses result.
type NodeAddress struct {
	Time     int64  `json:"time"`
	Services uint64 `json:"services"`
	Address  string `json:"address"`
	Port     int    `json:"port"`
	Network  string `json:"network"`
}
