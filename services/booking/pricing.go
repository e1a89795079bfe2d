package booking

import (
	"fmt"
	"math"

	"rentride/models"
)

// DownPaymentRate is the deposit share collected up front, applied uniformly.
const DownPaymentRate = 0.20

// PricingInput carries everything the breakdown builder needs. ExcessHours,
// ExcessHoursPrice, DriverFee and TotalAmount come from the orchestrating
// caller: excess policy is garage-specific and the authoritative total may
// already be known from the booking draft.
type PricingInput struct {
	RateCard         models.RateCard
	DurationHours    float64
	PickupMode       models.PickupMode
	DriverFee        float64
	ExcessHours      float64
	ExcessHoursPrice float64
	TotalAmount      float64
}

// BuildPricingBreakdown derives the explanatory price breakdown for a booking
// window. Tier selection is inclusive on the lower bracket: exactly 24 hours
// bills as 24-hours, not daily. Missing rate card fields read as zero; the
// builder never fails, since the product wants some number on screen rather
// than a blocked flow.
func BuildPricingBreakdown(in PricingInput) models.PricingBreakdown {
	rc := in.RateCard
	out := models.PricingBreakdown{
		DurationHours:    in.DurationHours,
		ExcessHours:      in.ExcessHours,
		ExcessHoursPrice: in.ExcessHoursPrice,
	}

	switch {
	case in.DurationHours <= 12:
		out.PricingType = models.Pricing12Hours
		out.RentalCost = rc.PricePer12Hours
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  "12-hour package",
			Amount: rc.PricePer12Hours,
		})
	case in.DurationHours <= 24:
		out.PricingType = models.Pricing24Hours
		out.RentalCost = rc.PricePer24Hours
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  "24-hour package",
			Amount: rc.PricePer24Hours,
		})
	default:
		out.PricingType = models.PricingDaily
		fullDays := math.Floor(in.DurationHours / 24)
		remainder := math.Mod(in.DurationHours, 24)
		dayCharge := fullDays * rc.PricePerDay
		out.RentalCost = dayCharge
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  fmt.Sprintf("%d day(s)", int(fullDays)),
			Amount: dayCharge,
		})
		if remainder > 0 {
			hourCharge := remainder * rc.PricePerHour
			out.RentalCost += hourCharge
			out.Lines = append(out.Lines, models.BreakdownLine{
				Label:  fmt.Sprintf("%g additional hour(s)", remainder),
				Amount: hourCharge,
			})
		}
	}

	if in.PickupMode == models.PickupModeDelivery {
		out.DeliveryFee = rc.DeliveryFee
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  "Delivery fee",
			Amount: rc.DeliveryFee,
			Note:   "Home delivery charge depends on the drop-off location and may vary.",
		})
	}

	if !rc.SelfDrive && rc.DriverCharge > 0 {
		out.DriverFee = in.DriverFee
		if out.DriverFee == 0 {
			out.DriverFee = rc.DriverCharge
		}
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  "Driver fee",
			Amount: out.DriverFee,
		})
	}

	if in.ExcessHours > 0 && in.ExcessHoursPrice > 0 {
		out.Lines = append(out.Lines, models.BreakdownLine{
			Label:  fmt.Sprintf("%g excess hour(s) surcharge", in.ExcessHours),
			Amount: in.ExcessHoursPrice,
		})
	}

	// The caller's total is authoritative when present; it is assembled from
	// the booking draft, which can carry charges this builder only explains.
	out.TotalAmount = in.TotalAmount
	if out.TotalAmount == 0 {
		out.TotalAmount = out.RentalCost + out.DeliveryFee + out.DriverFee + out.ExcessHoursPrice
	}

	out.DownPaymentRequired = out.TotalAmount * DownPaymentRate
	out.RemainingBalance = out.TotalAmount - out.DownPaymentRequired
	return out
}
