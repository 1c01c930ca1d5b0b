package trades

import (
	"testing"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

func TestAssetFromCopiesValue(t *testing.T) {
	p := players.Player{
		Info:         players.Info{ID: "4046", Name: "Patrick Mahomes", Position: players.QB},
		EndzoneValue: 812,
	}
	a := AssetFrom(p)
	if a.PlayerID != "4046" || a.Name != "Patrick Mahomes" || a.Position != players.QB || a.Value != 812 {
		t.Fatalf("unexpected asset %+v", a)
	}
}

func TestSumValuesAndSimple(t *testing.T) {
	if got := SumValues([]Asset{{Value: 3}, {Value: 4}}); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if SumValues(nil) != 0 {
		t.Fatal("expected empty sum to be zero")
	}
	if !OneForOne.Simple() || TwoForTwo.Simple() || ThreeForThree.Simple() {
		t.Fatal("only 1v1 trades are simple")
	}
}
