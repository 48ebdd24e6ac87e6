package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// TrustLevel is the human-readable band of a trust score.
type TrustLevel string

const (
	TrustLevelUnverified TrustLevel = "Unverified"
	TrustLevelVerifiedL1 TrustLevel = "Verified L1"
	TrustLevelVerifiedL2 TrustLevel = "Verified L2"
	TrustLevelTrusted    TrustLevel = "Trusted"
)

const (
	MaxTrustScore = 100

	scoreBase      = 10
	txBonusPerTx   = 2
	maxTxBonus     = 40
	maxVolumeBonus = 30.0
	maxAgeBonus    = 20.0

	// PlaceholderAccountAgeDays stands in for the real account age of any
	// account the network knows about. The network's account record carries
	// no creation time, so this is a fixed value rather than a measurement.
	PlaceholderAccountAgeDays int64 = 30
)

// ScoreInputs are the activity aggregates a trust score is derived from.
type ScoreInputs struct {
	TxCount        int64
	TotalVolume    float64
	AccountAgeDays int64
}

// ComputeTrustScore applies the scoring formula:
//
//	base        = 10
//	txBonus     = min(txCount*2, 40)
//	volumeBonus = 0 if volume <= 0 else min(log10(volume)*10, 30)
//	ageBonus    = min(ageDays/10, 20)
//	score       = floor(min(base+txBonus+volumeBonus+ageBonus, 100))
//
// Negative bonuses are clamped to zero, so the result is always in [0, 100]
// and never decreases when any input grows.
func ComputeTrustScore(in ScoreInputs) int {
	// Compare before multiplying so huge counts cannot wrap around.
	txBonus := float64(maxTxBonus)
	if in.TxCount < maxTxBonus/txBonusPerTx {
		txBonus = float64(in.TxCount * txBonusPerTx)
	}

	volumeBonus := 0.0
	if in.TotalVolume > 0 {
		volumeBonus = math.Min(math.Log10(in.TotalVolume)*10, maxVolumeBonus)
	}

	ageBonus := math.Min(float64(in.AccountAgeDays)/10, maxAgeBonus)

	total := scoreBase + math.Max(txBonus, 0) + math.Max(volumeBonus, 0) + math.Max(ageBonus, 0)
	score := int(math.Floor(math.Min(total, MaxTrustScore)))
	if score < 0 {
		return 0
	}
	return score
}

// LevelForScore maps a score to its band. Bands are inclusive.
func LevelForScore(score int) TrustLevel {
	switch {
	case score <= 30:
		return TrustLevelUnverified
	case score <= 60:
		return TrustLevelVerifiedL1
	case score <= 80:
		return TrustLevelVerifiedL2
	default:
		return TrustLevelTrusted
	}
}

// TrustScore is derived on demand and never persisted.
type TrustScore struct {
	PublicKey      string          `json:"public_key"`
	Score          int             `json:"trust_score"`
	Level          TrustLevel      `json:"level"`
	TxCount        int64           `json:"tx_count"`
	TotalVolume    decimal.Decimal `json:"total_volume"`
	AccountAgeDays int64           `json:"account_age_days"`
	LastCalculated time.Time       `json:"last_calculated"`
}

// NewTrustScore computes score and level from the given aggregates.
func NewTrustScore(publicKey string, txCount int64, volume decimal.Decimal, ageDays int64, now time.Time) *TrustScore {
	score := ComputeTrustScore(ScoreInputs{
		TxCount:        txCount,
		TotalVolume:    volume.InexactFloat64(),
		AccountAgeDays: ageDays,
	})
	return &TrustScore{
		PublicKey:      publicKey,
		Score:          score,
		Level:          LevelForScore(score),
		TxCount:        txCount,
		TotalVolume:    volume,
		AccountAgeDays: ageDays,
		LastCalculated: now,
	}
}
