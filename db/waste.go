package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"optiroute/types"
)

// --- Inventory ---

func (s *Store) CreateInventoryItem(ctx context.Context, item types.InventoryItem) (*types.InventoryItem, error) {
	item.ItemID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	if item.Status == "" {
		item.Status = types.InventoryAvailable
	}

	_, err := s.client.Collection(colInventory).Doc(item.ItemID).Set(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return &item, nil
}

func (s *Store) ListInventory(ctx context.Context, warehouseID string) ([]types.InventoryItem, error) {
	query := s.client.Collection(colInventory).Query
	if warehouseID != "" {
		query = query.Where("warehouseId", "==", warehouseID)
	}

	var items []types.InventoryItem
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating inventory: %w", err)
		}

		var item types.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("failed to parse inventory item %s: %w", doc.Ref.ID, err)
		}
		item.ItemID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

// UpdateInventoryItem replaces the stored lot. Callers pass back records
// they just read, so this is a plain overwrite.
func (s *Store) UpdateInventoryItem(ctx context.Context, item types.InventoryItem) error {
	_, err := s.client.Collection(colInventory).Doc(item.ItemID).Set(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return nil
}

// --- Demand ---

func (s *Store) CreateDemand(ctx context.Context, d types.DemandRecord) (*types.DemandRecord, error) {
	d.DemandID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()
	d.Open = true

	_, err := s.client.Collection(colDemands).Doc(d.DemandID).Set(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create demand: %w", err)
	}
	return &d, nil
}

func (s *Store) ListDemands(ctx context.Context, openOnly bool) ([]types.DemandRecord, error) {
	query := s.client.Collection(colDemands).Query
	if openOnly {
		query = query.Where("open", "==", true)
	}

	var demands []types.DemandRecord
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating demands: %w", err)
		}

		var d types.DemandRecord
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to parse demand %s: %w", doc.Ref.ID, err)
		}
		d.DemandID = doc.Ref.ID
		demands = append(demands, d)
	}
	return demands, nil
}

func (s *Store) UpdateDemand(ctx context.Context, d types.DemandRecord) error {
	_, err := s.client.Collection(colDemands).Doc(d.DemandID).Set(ctx, d)
	if err != nil {
		return fmt.Errorf("failed to update demand: %w", err)
	}
	return nil
}

// --- Logistics partners ---

func (s *Store) CreatePartner(ctx context.Context, p types.LogisticsPartner) (*types.LogisticsPartner, error) {
	p.PartnerID = uuid.NewString()
	p.Active = true

	_, err := s.client.Collection(colPartners).Doc(p.PartnerID).Set(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create logistics partner: %w", err)
	}
	return &p, nil
}

func (s *Store) ListPartners(ctx context.Context) ([]types.LogisticsPartner, error) {
	docs, err := s.client.Collection(colPartners).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list logistics partners: %w", err)
	}

	var partners []types.LogisticsPartner
	for _, doc := range docs {
		var p types.LogisticsPartner
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to parse partner %s: %w", doc.Ref.ID, err)
		}
		p.PartnerID = doc.Ref.ID
		partners = append(partners, p)
	}
	return partners, nil
}

// --- Storage sites ---

func (s *Store) CreateStorageSite(ctx context.Context, site types.StorageSite) (*types.StorageSite, error) {
	site.SiteID = uuid.NewString()

	_, err := s.client.Collection(colStorage).Doc(site.SiteID).Set(ctx, site)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage site: %w", err)
	}
	return &site, nil
}

func (s *Store) ListStorageSites(ctx context.Context) ([]types.StorageSite, error) {
	docs, err := s.client.Collection(colStorage).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list storage sites: %w", err)
	}

	var sites []types.StorageSite
	for _, doc := range docs {
		var site types.StorageSite
		if err := doc.DataTo(&site); err != nil {
			return nil, fmt.Errorf("failed to parse storage site %s: %w", doc.Ref.ID, err)
		}
		site.SiteID = doc.Ref.ID
		sites = append(sites, site)
	}
	return sites, nil
}

// --- Farmers ---

func (s *Store) CreateFarmer(ctx context.Context, f types.Farmer) (*types.Farmer, error) {
	f.FarmerID = uuid.NewString()

	_, err := s.client.Collection(colFarmers).Doc(f.FarmerID).Set(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to create farmer: %w", err)
	}
	return &f, nil
}

func (s *Store) ListFarmers(ctx context.Context) ([]types.Farmer, error) {
	docs, err := s.client.Collection(colFarmers).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}

	var farmers []types.Farmer
	for _, doc := range docs {
		var f types.Farmer
		if err := doc.DataTo(&f); err != nil {
			return nil, fmt.Errorf("failed to parse farmer %s: %w", doc.Ref.ID, err)
		}
		f.FarmerID = doc.Ref.ID
		farmers = append(farmers, f)
	}
	return farmers, nil
}
