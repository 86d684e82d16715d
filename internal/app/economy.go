// internal/app/economy.go
package app

// Economy хранит баланс игрока. Баланс никогда не уходит в минус:
// списание — атомарная проверка-и-вычет, частичных покупок нет.
type Economy struct {
	coins int
}

func NewEconomy(startingCoins int) *Economy {
	return &Economy{coins: startingCoins}
}

func (e *Economy) Coins() int {
	return e.coins
}

func (e *Economy) CanAfford(cost int) bool {
	return e.coins >= cost
}

// Spend списывает cost, если хватает средств. При нехватке баланс
// не меняется и возвращается false.
func (e *Economy) Spend(cost int) bool {
	if cost < 0 || e.coins < cost {
		return false
	}
	e.coins -= cost
	return true
}

// Credit зачисляет награду (за убийство или продажу башни).
func (e *Economy) Credit(amount int) {
	if amount > 0 {
		e.coins += amount
	}
}
