package metrics

// Key identifies a gauge in the exporter's fixed metric set.
type Key string

// Gauge keys. The exposed metric name is "bitcoin_" followed by the key.
const (
	Uptime Key = "uptime"

	BlockchainInfoBlocks               Key = "blockchain_info_blocks"
	BlockchainInfoHeaders              Key = "blockchain_info_headers"
	BlockchainInfoDifficulty           Key = "blockchain_info_difficulty"
	BlockchainInfoTime                 Key = "blockchain_info_time"
	BlockchainInfoMedianTime           Key = "blockchain_info_median_time"
	BlockchainInfoVerificationProgress Key = "blockchain_info_verification_progress"
	BlockchainInfoSizeOnDisk           Key = "blockchain_info_size_on_disk"

	NetworkInfoConnectionsIn  Key = "network_info_connections_in"
	NetworkInfoConnectionsOut Key = "network_info_connections_out"
	NetworkInfoConnections    Key = "network_info_connections"

	NetTotalsTotalBytesRecv Key = "net_totals_total_bytes_recv"
	NetTotalsTotalBytesSent Key = "net_totals_total_bytes_sent"

	MemPoolInfoSize  Key = "mem_pool_info_size"
	MemPoolInfoBytes Key = "mem_pool_info_bytes"
	MemPoolInfoUsage Key = "mem_pool_info_usage"

	MemoryInfoUsed       Key = "memory_info_used"
	MemoryInfoFree       Key = "memory_info_free"
	MemoryInfoTotal      Key = "memory_info_total"
	MemoryInfoLocked     Key = "memory_info_locked"
	MemoryInfoChunksUsed Key = "memory_info_chunks_used"
	MemoryInfoChunksFree Key = "memory_info_chunks_free"

	ExporterRPCTotal             Key = "exporter_rpc_total"
	ExporterRPCSuccess           Key = "exporter_rpc_success"
	ExporterRPCError             Key = "exporter_rpc_error"
	ExporterFetchDurationSeconds Key = "exporter_fetch_duration_seconds"
)

const namespace = "bitcoin"

type definition struct {
	key  Key
	help string
}

var definitions = []definition{
	{Uptime, "Total uptime of the node"},

	{BlockchainInfoBlocks, "Height of the most-work fully-validated chain"},
	{BlockchainInfoHeaders, "Number of headers that have been validated"},
	{BlockchainInfoDifficulty, "Current difficulty"},
	{BlockchainInfoTime, "Block time"},
	{BlockchainInfoMedianTime, "Median block time"},
	{BlockchainInfoVerificationProgress, "Estimate of verification progress"},
	{BlockchainInfoSizeOnDisk, "Estimated size of the block and undo files on disk"},

	{NetworkInfoConnectionsIn, "Number of inbound connections"},
	{NetworkInfoConnectionsOut, "Number of outbound connections"},
	{NetworkInfoConnections, "Total number of connections"},

	{NetTotalsTotalBytesRecv, "Total bytes received"},
	{NetTotalsTotalBytesSent, "Total bytes sent"},

	{MemPoolInfoSize, "Current TX count for the mempool"},
	{MemPoolInfoBytes, "Sum of all virtual transaction sizes for the mempool"},
	{MemPoolInfoUsage, "Total memory usage for the mempool"},

	{MemoryInfoUsed, "Number of bytes used"},
	{MemoryInfoFree, "Number of bytes available in current arenas"},
	{MemoryInfoTotal, "Total number of bytes managed"},
	{MemoryInfoLocked, "Amount of bytes that succeeded locking"},
	{MemoryInfoChunksUsed, "Number of allocated chunks"},
	{MemoryInfoChunksFree, "Number of unused chunks"},

	{ExporterRPCTotal, "Total RPC calls issued by the exporter"},
	{ExporterRPCSuccess, "Successful RPC calls issued by the exporter"},
	{ExporterRPCError, "Failed RPC calls issued by the exporter"},
	{ExporterFetchDurationSeconds, "Wall-clock time of the last batch of RPC calls"},
}

// Keys returns every registered gauge key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, len(definitions))
	for _, d := range definitions {
		keys = append(keys, d.key)
	}
	return keys
}
