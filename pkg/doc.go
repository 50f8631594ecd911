// Package pkg provides the core libraries for Vastuplan floor plan generation.
//
// # Overview
//
// Vastuplan turns a plot description into an annotated residential floor
// plan that follows Vastu Shastra placement rules. The pkg directory is
// organized into five main areas:
//
//  1. [plan] - Domain types (plot specs, rooms, directions, remedies)
//  2. [layout] - The rule engine (placement, validation, remedies)
//  3. [render] - Rasterization (walls, fixtures, openings, annotations)
//  4. [pipeline] - Orchestration (validate → layout → render → persist)
//  5. [cache], [planstore] - Infrastructure (render cache, plan records)
//
// # Architecture
//
// The typical data flow through Vastuplan:
//
//	Plot dimensions and orientation
//	         ↓
//	layout.Engine (rooms, validation, remedies)
//	         ↓
//	render.Renderer (annotated raster image)
//	         ↓
//	sink (encoded artifact on disk)
//
// The pipeline package ties the stages together and adds render-byte
// caching; planstore records what was generated for listing and
// retention sweeps.
package pkg
