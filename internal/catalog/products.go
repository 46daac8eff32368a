package catalog

import "storefront/internal/models"

// allProducts is the fixed storefront catalog. Prices are in the smallest
// currency unit. Stock, where present, is advisory display data only and is
// never decremented.
var allProducts = []models.Product{
	{
		ID:          "course001",
		Name:        "Canva Owner Account Creation",
		Category:    models.CategoryCourse,
		Description: "Learn how to create and manage Canva owner accounts professionally...",
		ImageURL:    "https://picsum.photos/seed/course1/400/300",
		Price:       500,
		Details:     "Full course on Canva account management, including advanced features and team collaboration.",
	},
	{
		ID:           "course002",
		Name:         "Digital Product Business with Facebook Ads",
		Category:     models.CategoryCourse,
		Description:  "Discover building digital product business using Facebook Advertising...",
		ImageURL:     "https://picsum.photos/seed/course2/400/300",
		Price:        1200,
		IsBestseller: true,
		Details:      "Comprehensive guide to marketing digital products using Facebook Ads, from strategy to execution.",
	},
	{
		ID:          "course003",
		Name:        "Facebook Ads Mastery Course",
		Category:    models.CategoryCourse,
		Description: "Master Facebook advertising with advanced strategies, targeting, and optimization...",
		ImageURL:    "https://picsum.photos/seed/course3/400/300",
		Price:       1500,
		Details:     "In-depth training on Facebook Ads, covering pixel setup, audience building, A/B testing, and scaling campaigns.",
	},
	{
		ID:          "sub001",
		Name:        "Canva Pro Subscription",
		Category:    models.CategorySubscription,
		Description: "Get access to Canva Pro features for your design needs...",
		ImageURL:    "https://picsum.photos/seed/sub1/400/300",
		Price:       150,
		Details:     "Monthly access to Canva Pro with all its premium features, templates, and assets.",
	},
	{
		ID:          "sub002",
		Name:        "Netflix Premium Plan",
		Category:    models.CategorySubscription,
		Description: "Enjoy unlimited movies and TV shows with the Premium subscription...",
		ImageURL:    "https://picsum.photos/seed/sub2/400/300",
		Price:       300,
		IsPopular:   true,
		Details:     "Netflix Premium plan with 4K streaming and multiple screens.",
	},
	{
		ID:          "sub003",
		Name:        "Spotify Premium",
		Category:    models.CategorySubscription,
		Description: "Listen to ad-free music with Spotify Premium and enjoy offline playback...",
		ImageURL:    "https://picsum.photos/seed/sub3/400/300",
		Price:       120,
		Details:     "Ad-free music streaming, offline downloads, and high-quality audio with Spotify Premium.",
	},
	{
		ID:          "soft001",
		Name:        "Adobe Creative Cloud Suite",
		Category:    models.CategorySoftware,
		Description: "Access full suite of Adobe Creative Cloud apps for professionals...",
		ImageURL:    "https://picsum.photos/seed/soft1/400/300",
		Price:       2500,
		Details:     "Full Adobe Creative Cloud suite including Photoshop, Illustrator, Premiere Pro, and more.",
	},
	{
		ID:          "soft002",
		Name:        "Microsoft Office 365",
		Category:    models.CategorySoftware,
		Description: "Get the latest Microsoft Office applications and cloud services...",
		ImageURL:    "https://picsum.photos/seed/soft2/400/300",
		Price:       800,
		Details:     "Microsoft Office 365 subscription with Word, Excel, PowerPoint, Outlook, and OneDrive storage.",
	},
	{
		ID:          "soft003",
		Name:        "Antivirus Pro Package",
		Category:    models.CategorySoftware,
		Description: "Protect your devices with our comprehensive Antivirus Pro software bundle...",
		ImageURL:    "https://picsum.photos/seed/soft3/400/300",
		Price:       600,
		IsPopular:   true,
		Details:     "Advanced antivirus protection for multiple devices, including real-time scanning and threat removal.",
	},
	{
		ID:          "ebook001",
		Name:        "The Digital Marketing Handbook",
		Category:    models.CategoryEbook,
		Description: "A comprehensive guide to mastering digital marketing strategies in 2024...",
		ImageURL:    "https://picsum.photos/seed/ebook1/400/300",
		Price:       350,
		Details:     "Complete guide covering SEO, SEM, content marketing, social media marketing, and email marketing.",
	},
	{
		ID:          "ebook002",
		Name:        "Passive Income Streams Guide",
		Category:    models.CategoryEbook,
		Description: "Discover proven methods to build sustainable passive income online...",
		ImageURL:    "https://picsum.photos/seed/ebook2/400/300",
		Price:       250,
		Details:     "Explore various passive income models such as affiliate marketing, digital products, and online courses.",
	},
	{
		ID:           "ebook003",
		Name:         "Freelancing Success Blueprint",
		Category:     models.CategoryEbook,
		Description:  "Your step-by-step blueprint to launching and scaling a successful freelance career...",
		ImageURL:     "https://picsum.photos/seed/ebook3/400/300",
		Price:        300,
		IsBestseller: true,
		Details:      "Actionable advice on finding clients, pricing services, managing projects, and growing your freelance business.",
	},
}
