package app

import "testing"

func TestEconomySpend(t *testing.T) {
	e := NewEconomy(100)

	if !e.Spend(60) {
		t.Fatalf("spend within balance should succeed")
	}
	if e.Coins() != 40 {
		t.Fatalf("coins = %d, want 40", e.Coins())
	}

	// Нехватка: баланс не трогается.
	if e.Spend(50) {
		t.Fatalf("overspend should fail")
	}
	if e.Coins() != 40 {
		t.Fatalf("failed spend must not change the balance, coins = %d", e.Coins())
	}
}

func TestEconomyExactBalance(t *testing.T) {
	e := NewEconomy(100)
	if !e.Spend(100) {
		t.Fatalf("spending the exact balance should succeed")
	}
	if e.Coins() != 0 {
		t.Fatalf("coins = %d, want 0", e.Coins())
	}
}

func TestEconomyNegativeAmounts(t *testing.T) {
	e := NewEconomy(100)

	if e.Spend(-10) {
		t.Fatalf("negative spend should fail")
	}
	e.Credit(-10)
	if e.Coins() != 100 {
		t.Fatalf("negative credit must be ignored, coins = %d", e.Coins())
	}
}

func TestEconomyCredit(t *testing.T) {
	e := NewEconomy(0)
	e.Credit(25)
	if e.Coins() != 25 {
		t.Fatalf("coins = %d, want 25", e.Coins())
	}
	if !e.CanAfford(25) || e.CanAfford(26) {
		t.Fatalf("CanAfford boundary check failed at 25 coins")
	}
}
