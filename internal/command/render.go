package command

import (
	"fmt"
	"strings"

	"github.com/osse101/BabyEggBot_Go/internal/catalog"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
)

func eggSummary(b *strings.Builder, v *egg.View) {
	fmt.Fprintf(b, StatusNameFmt+"\n", v.Egg.Name)
	fmt.Fprintf(b, StatusGenderFmt+"\n", v.Egg.Gender)
	fmt.Fprintf(b, StatusAgeFmt+"\n", egg.FormatAge(v.Age))
}

func eggDetail(b *strings.Builder, v *egg.View) {
	if v == nil {
		fmt.Fprintf(b, StatusNameFmt+"\n", StatusNoEggName)
		fmt.Fprintf(b, StatusGenderFmt+"\n", StatusUnknownGender)
		return
	}
	eggSummary(b, v)
	if v.Egg.IsDead {
		b.WriteString(StatusPartnerDead + "\n")
		return
	}
	for _, c := range v.Countdowns {
		b.WriteString(egg.FormatCountdown(c) + "\n")
	}
}

// renderStatus builds the egg status reply. full is false when the reply is a
// short notice and the inventory follow-up should be skipped.
func renderStatus(view egg.StatusView) (text string, full bool) {
	var b strings.Builder

	if view.Own == nil {
		if view.Partner == nil {
			return MsgNoEggOrPartner, false
		}
		b.WriteString(StatusNoEggHeader + "\n\n")
		b.WriteString(StatusPartnerHeader + "\n")
		eggSummary(&b, view.Partner)
		return strings.TrimRight(b.String(), "\n"), false
	}

	if view.Own.Egg.IsDead {
		return fmt.Sprintf(MsgEggPassedAwayFmt, view.Own.Egg.Name), false
	}

	b.WriteString(StatusOwnHeader + "\n")
	eggDetail(&b, view.Own)
	b.WriteString("\n" + StatusPartnerHeader + "\n")
	eggDetail(&b, view.Partner)
	return strings.TrimRight(b.String(), "\n"), true
}

func renderInventory(listing inventory.Listing) string {
	if listing.Empty() {
		return MsgInventoryEmpty
	}

	labels := func(items []inventory.Item) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.Label
		}
		return out
	}

	pets := InventoryNoPets
	if len(listing.Pets) > 0 {
		pets = strings.Join(labels(listing.Pets), "\n")
	}
	apparel := InventoryNoApparel
	if len(listing.Apparel) > 0 {
		apparel = strings.Join(labels(listing.Apparel), "\n")
	}
	return InventoryPetsHeader + "\n" + pets + "\n\n" + InventoryGearHeader + "\n" + apparel
}

func renderShop() string {
	entries := catalog.Entries(catalog.KindApparel)
	lines := make([]string, len(entries))
	for i, e := range entries {
		badge := ""
		if e.Rare {
			badge = catalog.RareBadge
		}
		lines[i] = fmt.Sprintf(MsgShopLineFmt, e.Label, e.Price, badge)
	}
	return MsgShopHeader + "\n" + strings.Join(lines, "\n")
}

func renderPetShop() string {
	entries := catalog.Entries(catalog.KindPet)
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf(MsgPetShopLineFmt, e.DisplayLabel(), e.Price)
	}
	return MsgPetShopHeader + "\n" + strings.Join(lines, "\n")
}
