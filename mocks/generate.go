package mocks

//go:generate mockgen -destination=./mock_point_source.go -package=mocks github.com/rxtech-lab/argo-graph/pkg/pointsource PointSource
