package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
)

// systemPrompt establishes the model's role as an impartial dispute adjudicator.
const systemPrompt = "You are an expert case solver for dispute settlements. " +
	"Ensure fairness in analysis. Provide concise answers, but elaborate if requested."

const (
	fallbackUnknown      = "Unknown"
	fallbackNoneProvided = "None provided"
)

// buildAdjudicationPrompt renders the late-order context into the user prompt.
// Absent fields degrade to their documented fallback strings so the model
// always receives a complete picture.
func buildAdjudicationPrompt(order *domain.Order, delayDays int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The delivery of an order by %s is delayed by %d days. Here are the details:\n",
		stringOr(order.Vendor.Name, fallbackUnknown), delayDays)
	fmt.Fprintf(&b, "Item Name: %s\n", stringOr(order.ItemName, fallbackUnknown))
	fmt.Fprintf(&b, "Quantity: %s\n", intOr(order.Quantity, fallbackUnknown))
	fmt.Fprintf(&b, "External Factors: %s\n", stringPtrOr(order.ExternalFactors, fallbackNoneProvided))
	fmt.Fprintf(&b, "Distance: %s km\n", floatOr(order.DistanceKm, fallbackUnknown))
	fmt.Fprintf(&b, "Priority: %s\n", priorityOr(order.Priority, fallbackUnknown))
	fmt.Fprintf(&b, "Stock Before Order: %s units\n", intOr(order.StockBeforeOrder, fallbackUnknown))
	fmt.Fprintf(&b, "Current Inventory: %s units\n", intOr(order.CurrentInventory, fallbackUnknown))
	b.WriteString("Based on these details, determine if the vendor is at fault or if they can be exempted. " +
		"Do not give mixed or confusing answers. The vendor is either at fault or not. " +
		"Consider that priority is for hospital medicines, and a delay of more than three days past the buffer time is unacceptable.")
	return b.String()
}

func stringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func stringPtrOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return stringOr(*value, fallback)
}

func priorityOr(value *domain.Priority, fallback string) string {
	if value == nil {
		return fallback
	}
	return stringOr(string(*value), fallback)
}

func intOr(value *int, fallback string) string {
	if value == nil {
		return fallback
	}
	return strconv.Itoa(*value)
}

func floatOr(value *float64, fallback string) string {
	if value == nil {
		return fallback
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
