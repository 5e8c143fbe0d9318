// Package suite builds the view models of the Lark executive suite from
// fixture data: report tables with AI insights, home KPIs, product
// margins, inventory status, the QR menu, alerts, and the POS cart.
//
// Values are pure functions of their inputs except Cart.Charge, which
// draws a random receipt ID.
package suite
