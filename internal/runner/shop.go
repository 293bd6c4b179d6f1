package runner

import "github.com/vovakirdan/word-runner/internal/config"

// ShopItem is one entry of the in-run shop.
type ShopItem struct {
	Kind        ItemKind
	Name        string
	Description string
	Cost        int
}

// catalog lists every item in display order.
var catalog = []ShopItem{
	{Kind: ItemDoubleJump, Name: "JETPACK BOOSTER", Description: "Permet un double saut pour atteindre les actifs en hauteur."},
	{Kind: ItemImmortal, Name: "PARACHUTE DORÉ", Description: "Protection temporaire contre les dettes et licenciements."},
	{Kind: ItemMagnet, Name: "AIMANT CORPORATE", Description: "Attire automatiquement les gains financiers vers vous."},
	{Kind: ItemMultiplier, Name: "CROISSANCE X2", Description: "Doublez tous vos gains instantanément."},
}

// Catalog returns every shop item priced from the power-up config.
func Catalog(p config.RunnerPowerups) []ShopItem {
	items := make([]ShopItem, 0, len(catalog))
	for _, item := range catalog {
		cost, ok := p.ShopPrice(string(item.Kind))
		if !ok {
			continue
		}
		item.Cost = cost
		items = append(items, item)
	}
	return items
}

// ShopItems returns the items still on offer; owned power-ups are hidden.
func (e *Engine) ShopItems() []ShopItem {
	var items []ShopItem
	for _, item := range Catalog(e.cfg.Powerups) {
		if e.inventory.Owned(item.Kind) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// applyItem grants the effect of a purchased item.
func (inv *Inventory) applyItem(kind ItemKind) bool {
	switch kind {
	case ItemDoubleJump:
		inv.DoubleJump = true
	case ItemImmortal:
		inv.Immortality = true
	case ItemMagnet:
		inv.Magnet = true
	case ItemMultiplier:
		inv.ScoreMultiplier = 2
	default:
		return false
	}
	return true
}

// knownItem reports whether the kind is a shop item.
func knownItem(kind ItemKind) bool {
	for _, item := range catalog {
		if item.Kind == kind {
			return true
		}
	}
	return false
}
