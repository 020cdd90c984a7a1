package catalog

import "github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"

// Seed data for the storefront. Order matters: search results and slug
// resolution follow this exact iteration order.

var seedCategories = []domain.Category{
	{ID: 1, Name: "Slides", Icon: "/icons/slides.svg", Description: "Easy slip-on comfort for every day", Slug: "slides", Active: true},
	{ID: 2, Name: "Sneakers", Icon: "/icons/sneakers.svg", Description: "Street-ready trainers and runners", Slug: "sneakers", Active: true},
	{ID: 3, Name: "Sandals", Icon: "/icons/sandals.svg", Description: "Open styles for warm days", Slug: "sandals", Active: true},
	{ID: 4, Name: "Boots", Icon: "/icons/boots.svg", Description: "Rugged builds for rough ground", Slug: "boots", Active: true},
	{ID: 5, Name: "Loafers", Icon: "/icons/loafers.svg", Description: "Coming soon", Slug: "loafers", Active: false},
}

var seedProducts = []domain.Product{
	// slides
	{ID: 1, Name: "Azure Pool Slide", Price: "₦12,500", Image: "/images/slides/azure-pool.jpg", Category: "slides", Description: "Cushioned footbed with quick-dry strap", InStock: true},
	{ID: 2, Name: "Onyx Comfort Slide", Price: "₦13,000", Image: "/images/slides/onyx-comfort.jpg", Category: "slides", Description: "Matte black, contoured sole", InStock: true},
	{ID: 3, Name: "Coral Beach Slide", Price: "₦11,800", Image: "/images/slides/coral-beach.jpg", Category: "slides", Description: "Lightweight EVA for the beach", InStock: true},
	{ID: 4, Name: "Ivory Lounge Slide", Price: "₦14,200", Image: "/images/slides/ivory-lounge.jpg", Category: "slides", Description: "Plush cross-band upper", InStock: true},
	{ID: 5, Name: "Forest Trek Slide", Price: "₦13,600", Image: "/images/slides/forest-trek.jpg", Category: "slides", Description: "Grippy outsole for wet floors", InStock: false},
	{ID: 6, Name: "Sunset Stripe Slide", Price: "₦12,900", Image: "/images/slides/sunset-stripe.jpg", Category: "slides", Description: "Three-stripe strap, arch support", InStock: true},
	// sneakers
	{ID: 7, Name: "Velocity Runner", Price: "₦28,500", Image: "/images/sneakers/velocity-runner.jpg", Category: "sneakers", Description: "Breathable mesh daily trainer", InStock: true},
	{ID: 8, Name: "Court Classic Low", Price: "₦24,000", Image: "/images/sneakers/court-classic.jpg", Category: "sneakers", Description: "Leather court icon", InStock: true},
	{ID: 9, Name: "Urban Drift High", Price: "₦31,000", Image: "/images/sneakers/urban-drift.jpg", Category: "sneakers", Description: "High-top with padded collar", InStock: true},
	{ID: 10, Name: "Cloudstep Knit", Price: "₦29,700", Image: "/images/sneakers/cloudstep-knit.jpg", Category: "sneakers", Description: "Sock-fit knit upper", InStock: true},
	{ID: 11, Name: "Trailblazer GTX", Price: "₦36,400", Image: "/images/sneakers/trailblazer-gtx.jpg", Category: "sneakers", Description: "Waterproof trail runner", InStock: true},
	{ID: 12, Name: "Retro Blaze 87", Price: "₦26,800", Image: "/images/sneakers/retro-blaze.jpg", Category: "sneakers", Description: "Vintage colorway, gum sole", InStock: true},
	{ID: 13, Name: "Night Pulse Reflective", Price: "₦33,200", Image: "/images/sneakers/night-pulse.jpg", Category: "sneakers", Description: "360 reflective panels", InStock: false},
	{ID: 14, Name: "Apex Street Pro", Price: "₦30,500", Image: "/images/sneakers/apex-street.jpg", Category: "sneakers", Description: "Skate-ready suede toe", InStock: true},
	{ID: 15, Name: "Featherlite Racer", Price: "₦27,900", Image: "/images/sneakers/featherlite-racer.jpg", Category: "sneakers", Description: "Race-day flat, 180g", InStock: true},
	// sandals
	{ID: 16, Name: "Savanna Strap Sandal", Price: "₦16,000", Image: "/images/sandals/savanna-strap.jpg", Category: "sandals", Description: "Adjustable double strap", InStock: true},
	{ID: 17, Name: "Riviera Crossover", Price: "₦17,400", Image: "/images/sandals/riviera-crossover.jpg", Category: "sandals", Description: "Woven leather crossover", InStock: true},
	{ID: 18, Name: "Dune Walker", Price: "₦15,300", Image: "/images/sandals/dune-walker.jpg", Category: "sandals", Description: "Cork footbed, rubber sole", InStock: true},
	{ID: 19, Name: "Lagoon Flip", Price: "₦9,800", Image: "/images/sandals/lagoon-flip.jpg", Category: "sandals", Description: "Everyday flip-flop", InStock: true},
	// boots
	{ID: 20, Name: "Granite Work Boot", Price: "₦45,000", Image: "/images/boots/granite-work.jpg", Category: "boots", Description: "Steel toe, oil-resistant sole", InStock: true},
	{ID: 21, Name: "Highland Chelsea", Price: "₦41,500", Image: "/images/boots/highland-chelsea.jpg", Category: "boots", Description: "Elastic side panels, full grain", InStock: true},
	{ID: 22, Name: "Storm Ridge Hiker", Price: "₦48,200", Image: "/images/boots/storm-ridge.jpg", Category: "boots", Description: "Insulated winter hiker", InStock: true},
	// loafers (category not yet active, products still searchable)
	{ID: 23, Name: "Mahogany Penny Loafer", Price: "₦38,000", Image: "/images/loafers/mahogany-penny.jpg", Category: "loafers", Description: "Hand-stitched moc toe", InStock: true},
	{ID: 24, Name: "Slate Horsebit Loafer", Price: "₦39,500", Image: "/images/loafers/slate-horsebit.jpg", Category: "loafers", Description: "Polished horsebit detail", InStock: true},
}
