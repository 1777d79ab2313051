package dto

// EvaluateSiteRequest punto candidato para evaluar una nueva ubicación.
type EvaluateSiteRequest struct {
	Lat    float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng    float64 `json:"lng" validate:"required,min=-180,max=180"`
	Period string  `json:"period,omitempty"` // filtro de período de demanda, ej "2026-Q1"
}

// SiteMetricsDTO métricas de soporte. Las distancias van como puntero: null
// cuando el dataset correspondiente está vacío (+Inf no es serializable en JSON).
type SiteMetricsDTO struct {
	DistanceToRoadKm        *float64 `json:"distance_to_road_km"`
	DistanceToProjectKm     *float64 `json:"distance_to_project_km"`
	DistanceToDistributorKm *float64 `json:"distance_to_distributor_km"`
	DistanceToWarehouseKm   *float64 `json:"distance_to_warehouse_km"`
	PotentialSalesTonsYear  int      `json:"potential_sales_tons_year"`
	TruckAccess             bool     `json:"truck_access"`
	ResidentialDensity      string   `json:"residential_density"`
}

// SiteRisksDTO riesgos clasificados (low, medium, high).
type SiteRisksDTO struct {
	OverlapDistributor string `json:"overlap_distributor"`
	NearWarehouse      string `json:"near_warehouse"`
	Cannibalization    string `json:"cannibalization"`
}

// SiteScoreResponse resultado de la evaluación de un sitio candidato.
type SiteScoreResponse struct {
	Score          int            `json:"score"`
	Recommendation string         `json:"recommendation"`
	DemandScore    int            `json:"demand_score"`
	Metrics        SiteMetricsDTO `json:"metrics"`
	Risks          SiteRisksDTO   `json:"risks"`
}
