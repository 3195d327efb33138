package exporter

import (
	"github.com/goodnatureofminers/bitcoin-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/metrics"
)

// Each apply decodes the whole result before touching a gauge, so a
// malformed payload leaves the previous values in place.

func (s *Service) applyUptime(env bitcoin.Envelope) error {
	var uptime int64
	if err := env.Decode(&uptime); err != nil {
		return err
	}
	s.gauges.Set(metrics.Uptime, float64(uptime))
	return nil
}

func (s *Service) applyBlockchainInfo(env bitcoin.Envelope) error {
	var info bitcoin.BlockchainInfo
	if err := env.Decode(&info); err != nil {
		return err
	}
	s.gauges.Set(metrics.BlockchainInfoBlocks, float64(info.Blocks))
	s.gauges.Set(metrics.BlockchainInfoHeaders, float64(info.Headers))
	s.gauges.Set(metrics.BlockchainInfoDifficulty, info.Difficulty)
	s.gauges.Set(metrics.BlockchainInfoTime, float64(info.Time))
	s.gauges.Set(metrics.BlockchainInfoMedianTime, float64(info.MedianTime))
	s.gauges.Set(metrics.BlockchainInfoVerificationProgress, info.VerificationProgress)
	s.gauges.Set(metrics.BlockchainInfoSizeOnDisk, float64(info.SizeOnDisk))
	return nil
}

func (s *Service) applyNetworkInfo(env bitcoin.Envelope) error {
	var info bitcoin.NetworkInfo
	if err := env.Decode(&info); err != nil {
		return err
	}
	s.gauges.Set(metrics.NetworkInfoConnectionsIn, float64(info.ConnectionsIn))
	s.gauges.Set(metrics.NetworkInfoConnectionsOut, float64(info.ConnectionsOut))
	s.gauges.Set(metrics.NetworkInfoConnections, float64(info.Connections))
	return nil
}

func (s *Service) applyNetTotals(env bitcoin.Envelope) error {
	var totals bitcoin.NetTotals
	if err := env.Decode(&totals); err != nil {
		return err
	}
	s.gauges.Set(metrics.NetTotalsTotalBytesRecv, float64(totals.TotalBytesRecv))
	s.gauges.Set(metrics.NetTotalsTotalBytesSent, float64(totals.TotalBytesSent))
	return nil
}

func (s *Service) applyMemoryInfo(env bitcoin.Envelope) error {
	var info bitcoin.MemoryInfo
	if err := env.Decode(&info); err != nil {
		return err
	}
	locked := info.Locked
	s.gauges.Set(metrics.MemoryInfoUsed, float64(locked.Used))
	s.gauges.Set(metrics.MemoryInfoFree, float64(locked.Free))
	s.gauges.Set(metrics.MemoryInfoTotal, float64(locked.Total))
	s.gauges.Set(metrics.MemoryInfoLocked, float64(locked.Locked))
	s.gauges.Set(metrics.MemoryInfoChunksUsed, float64(locked.ChunksUsed))
	s.gauges.Set(metrics.MemoryInfoChunksFree, float64(locked.ChunksFree))
	return nil
}

func (s *Service) applyMempoolInfo(env bitcoin.Envelope) error {
	var info bitcoin.MempoolInfo
	if err := env.Decode(&info); err != nil {
		return err
	}
	s.gauges.Set(metrics.MemPoolInfoSize, float64(info.Size))
	s.gauges.Set(metrics.MemPoolInfoBytes, float64(info.Bytes))
	s.gauges.Set(metrics.MemPoolInfoUsage, float64(info.Usage))
	return nil
}
