package dto

import (
	"github.com/finanzas-personales/backend/internal/application/usecase/snapshot"
)

// ImportSnapshotResponse reports what a snapshot import did.
type ImportSnapshotResponse struct {
	Goals       int      `json:"goals"`
	Payments    int      `json:"payments"`
	Cards       int      `json:"cards"`
	Timeless    int      `json:"timeless"`
	Wishlist    int      `json:"wishlist"`
	RepairedIDs int      `json:"repaired_ids"`
	Skipped     []string `json:"skipped,omitempty"`
}

// ToImportSnapshotResponse converts an import output to its DTO.
func ToImportSnapshotResponse(output *snapshot.ImportOutput) ImportSnapshotResponse {
	return ImportSnapshotResponse{
		Goals:       output.Goals,
		Payments:    output.Payments,
		Cards:       output.Cards,
		Timeless:    output.Timeless,
		Wishlist:    output.Wishlist,
		RepairedIDs: output.RepairedIDs,
		Skipped:     output.Skipped,
	}
}
