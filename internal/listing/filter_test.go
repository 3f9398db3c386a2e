package listing

import (
	"testing"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	coins := sampleCoins()

	assert.Equal(t, []string{"Bitcoin", "Bitcoin Cash"}, names(MatchName(coins, "bIt")))
	assert.Len(t, MatchName(coins, ""), 3)
	assert.Empty(t, MatchName(coins, "xrp"))
	assert.Empty(t, MatchName(nil, "bit"))
}

func TestMatchExact(t *testing.T) {
	coins := sampleCoins()

	assert.Equal(t, []string{"Bitcoin"}, names(MatchExact(coins, "BITCOIN")))
	assert.Empty(t, MatchExact(coins, "Bitco"))
}

func TestSuggest(t *testing.T) {
	assert.Nil(t, Suggest(sampleCoins(), ""))
	assert.Equal(t, []string{"Ethereum"}, names(Suggest(sampleCoins(), "ether")))
}

// обе проверки сравнивают имена через ToLower, без Unicode-свёртки EqualFold
func TestMatchExactSameFoldingAsMatchName(t *testing.T) {
	coins := []domain.Coin{{ID: "solana", Name: "Solana"}}

	assert.Empty(t, MatchExact(coins, "ſolana"))
	assert.Empty(t, MatchName(coins, "ſolana"))
	assert.Len(t, MatchExact(coins, "SOLANA"), 1)
}
