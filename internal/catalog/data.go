package catalog

// allProducts is the static catalog, grouped by category. IDs are stable
// and referenced by cart/wishlist rows, so never renumber entries.
var allProducts = []Product{
	// Electronics
	{ID: 1, Name: "Premium Wireless Headphones", Price: 2999, OriginalPrice: 4999, Discount: 40, Rating: 4.5, Image: "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "High-quality wireless headphones with noise cancellation"},
	{ID: 2, Name: "Smart Fitness Watch", Price: 3499, OriginalPrice: 5999, Discount: 42, Rating: 4.7, Image: "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Track your fitness goals with style"},
	{ID: 9, Name: "Bluetooth Speaker", Price: 1999, OriginalPrice: 3499, Discount: 43, Rating: 4.6, Image: "https://images.pexels.com/photos/8000575/pexels-photo-8000575.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Portable speaker with amazing sound quality"},
	{ID: 11, Name: "Gaming Mouse", Price: 1799, OriginalPrice: 2999, Discount: 40, Rating: 4.7, Image: "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Professional gaming mouse with RGB lighting"},
	{ID: 13, Name: "Laptop Pro 15\"", Price: 45999, OriginalPrice: 65999, Discount: 30, Rating: 4.8, Image: "https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Powerful laptop for professionals"},
	{ID: 14, Name: "Smartphone 5G", Price: 24999, OriginalPrice: 32999, Discount: 24, Rating: 4.6, Image: "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Latest 5G smartphone with amazing features"},
	{ID: 15, Name: "Wireless Keyboard", Price: 2499, OriginalPrice: 3999, Discount: 38, Rating: 4.4, Image: "https://images.pexels.com/photos/2115257/pexels-photo-2115257.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Mechanical wireless keyboard"},
	{ID: 16, Name: "HD Webcam", Price: 3999, OriginalPrice: 5999, Discount: 33, Rating: 4.5, Image: "https://images.pexels.com/photos/4219861/pexels-photo-4219861.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "1080p HD webcam for video calls"},
	{ID: 17, Name: "Power Bank 20000mAh", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.3, Image: "https://images.pexels.com/photos/4219861/pexels-photo-4219861.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Fast charging power bank"},
	{ID: 18, Name: "USB-C Hub", Price: 1999, OriginalPrice: 2999, Discount: 33, Rating: 4.6, Image: "https://images.pexels.com/photos/5060988/pexels-photo-5060988.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Electronics", Description: "Multi-port USB-C hub"},

	// Fashion
	{ID: 3, Name: "Designer Handbag", Price: 1999, OriginalPrice: 3999, Discount: 50, Rating: 4.3, Image: "https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Elegant designer handbag"},
	{ID: 4, Name: "Running Shoes", Price: 2499, OriginalPrice: 4499, Discount: 44, Rating: 4.6, Image: "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Comfortable running shoes"},
	{ID: 10, Name: "Sunglasses Collection", Price: 1299, OriginalPrice: 2499, Discount: 48, Rating: 4.4, Image: "https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Stylish UV protection sunglasses"},
	{ID: 12, Name: "Casual Backpack", Price: 1499, OriginalPrice: 2999, Discount: 50, Rating: 4.5, Image: "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Trendy casual backpack"},
	{ID: 19, Name: "Leather Jacket", Price: 4999, OriginalPrice: 7999, Discount: 38, Rating: 4.7, Image: "https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Premium leather jacket"},
	{ID: 20, Name: "Designer Watch", Price: 5999, OriginalPrice: 9999, Discount: 40, Rating: 4.8, Image: "https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Luxury designer watch"},
	{ID: 21, Name: "Cotton T-Shirt Pack", Price: 999, OriginalPrice: 1999, Discount: 50, Rating: 4.2, Image: "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Pack of 3 cotton t-shirts"},
	{ID: 22, Name: "Denim Jeans", Price: 1799, OriginalPrice: 2999, Discount: 40, Rating: 4.5, Image: "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Comfortable denim jeans"},
	{ID: 23, Name: "Formal Shoes", Price: 2999, OriginalPrice: 4999, Discount: 40, Rating: 4.6, Image: "https://images.pexels.com/photos/293405/pexels-photo-293405.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Classic formal shoes"},
	{ID: 24, Name: "Sports Cap", Price: 599, OriginalPrice: 999, Discount: 40, Rating: 4.3, Image: "https://images.pexels.com/photos/984619/pexels-photo-984619.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Fashion", Description: "Breathable sports cap"},

	// Beauty
	{ID: 5, Name: "Organic Skincare Set", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.8, Image: "https://images.pexels.com/photos/3762879/pexels-photo-3762879.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Complete organic skincare routine"},
	{ID: 6, Name: "Luxury Perfume", Price: 3999, OriginalPrice: 5999, Discount: 33, Rating: 4.9, Image: "https://images.pexels.com/photos/1961795/pexels-photo-1961795.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Premium luxury perfume"},
	{ID: 25, Name: "Makeup Kit Professional", Price: 2999, OriginalPrice: 4999, Discount: 40, Rating: 4.7, Image: "https://images.pexels.com/photos/2113855/pexels-photo-2113855.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Professional makeup kit"},
	{ID: 26, Name: "Hair Care Set", Price: 1799, OriginalPrice: 2999, Discount: 40, Rating: 4.6, Image: "https://images.pexels.com/photos/3993449/pexels-photo-3993449.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Complete hair care solution"},
	{ID: 27, Name: "Face Mask Collection", Price: 899, OriginalPrice: 1499, Discount: 40, Rating: 4.5, Image: "https://images.pexels.com/photos/3852159/pexels-photo-3852159.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Variety pack of face masks"},
	{ID: 28, Name: "Nail Polish Set", Price: 699, OriginalPrice: 1199, Discount: 42, Rating: 4.4, Image: "https://images.pexels.com/photos/792025/pexels-photo-792025.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "12 colors nail polish set"},
	{ID: 29, Name: "Essential Oils Kit", Price: 1999, OriginalPrice: 3499, Discount: 43, Rating: 4.8, Image: "https://images.pexels.com/photos/4022092/pexels-photo-4022092.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Natural essential oils"},
	{ID: 30, Name: "Lip Care Combo", Price: 799, OriginalPrice: 1299, Discount: 38, Rating: 4.6, Image: "https://images.pexels.com/photos/2751755/pexels-photo-2751755.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Beauty", Description: "Complete lip care combo"},

	// Home & Living
	{ID: 7, Name: "Coffee Maker Pro", Price: 4999, OriginalPrice: 7999, Discount: 38, Rating: 4.4, Image: "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Professional coffee maker"},
	{ID: 31, Name: "Bedsheet Set King Size", Price: 2499, OriginalPrice: 3999, Discount: 38, Rating: 4.5, Image: "https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Premium cotton bedsheet set"},
	{ID: 32, Name: "Table Lamp Modern", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.6, Image: "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Modern LED table lamp"},
	{ID: 33, Name: "Wall Clock Designer", Price: 999, OriginalPrice: 1799, Discount: 44, Rating: 4.3, Image: "https://images.pexels.com/photos/1010519/pexels-photo-1010519.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Designer wall clock"},
	{ID: 34, Name: "Throw Pillows Set", Price: 1299, OriginalPrice: 2199, Discount: 41, Rating: 4.7, Image: "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Comfortable throw pillows"},
	{ID: 35, Name: "Kitchen Utensils Set", Price: 1999, OriginalPrice: 3499, Discount: 43, Rating: 4.5, Image: "https://images.pexels.com/photos/1449056/pexels-photo-1449056.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Complete kitchen utensils"},
	{ID: 36, Name: "Vacuum Cleaner", Price: 5999, OriginalPrice: 8999, Discount: 33, Rating: 4.8, Image: "https://images.pexels.com/photos/4107120/pexels-photo-4107120.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "Powerful vacuum cleaner"},
	{ID: 37, Name: "Air Purifier", Price: 7999, OriginalPrice: 11999, Discount: 33, Rating: 4.6, Image: "https://images.pexels.com/photos/4099354/pexels-photo-4099354.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Home & Living", Description: "HEPA air purifier"},

	// Sports
	{ID: 8, Name: "Yoga Mat Premium", Price: 999, OriginalPrice: 1999, Discount: 50, Rating: 4.5, Image: "https://images.pexels.com/photos/3822844/pexels-photo-3822844.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Anti-slip premium yoga mat"},
	{ID: 38, Name: "Dumbbell Set", Price: 2999, OriginalPrice: 4999, Discount: 40, Rating: 4.7, Image: "https://images.pexels.com/photos/416778/pexels-photo-416778.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Adjustable dumbbell set"},
	{ID: 39, Name: "Cricket Kit Complete", Price: 4999, OriginalPrice: 7999, Discount: 38, Rating: 4.6, Image: "https://images.pexels.com/photos/163487/baseball-player-pitcher-ball-163487.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Professional cricket kit"},
	{ID: 40, Name: "Football Official", Price: 1299, OriginalPrice: 1999, Discount: 35, Rating: 4.5, Image: "https://images.pexels.com/photos/399187/pexels-photo-399187.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Official size football"},
	{ID: 41, Name: "Badminton Racket Pro", Price: 2499, OriginalPrice: 3999, Discount: 38, Rating: 4.8, Image: "https://images.pexels.com/photos/2202685/pexels-photo-2202685.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Professional badminton racket"},
	{ID: 42, Name: "Gym Bag Large", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.4, Image: "https://images.pexels.com/photos/2526878/pexels-photo-2526878.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Spacious gym bag"},
	{ID: 43, Name: "Protein Shaker", Price: 399, OriginalPrice: 699, Discount: 43, Rating: 4.3, Image: "https://images.pexels.com/photos/6551415/pexels-photo-6551415.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Leak-proof protein shaker"},
	{ID: 44, Name: "Resistance Bands Set", Price: 799, OriginalPrice: 1299, Discount: 38, Rating: 4.6, Image: "https://images.pexels.com/photos/4162491/pexels-photo-4162491.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Sports", Description: "Complete resistance bands"},

	// Books
	{ID: 45, Name: "Best Seller Novel Collection", Price: 999, OriginalPrice: 1999, Discount: 50, Rating: 4.8, Image: "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Collection of bestselling novels"},
	{ID: 46, Name: "Self-Help Guide", Price: 499, OriginalPrice: 799, Discount: 38, Rating: 4.6, Image: "https://images.pexels.com/photos/4866019/pexels-photo-4866019.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Inspiring self-help guide"},
	{ID: 47, Name: "Cookbook Deluxe", Price: 799, OriginalPrice: 1299, Discount: 38, Rating: 4.7, Image: "https://images.pexels.com/photos/3894378/pexels-photo-3894378.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "500+ recipes cookbook"},
	{ID: 48, Name: "Kids Story Books Set", Price: 1299, OriginalPrice: 1999, Discount: 35, Rating: 4.9, Image: "https://images.pexels.com/photos/4207909/pexels-photo-4207909.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Set of 10 kids story books"},
	{ID: 49, Name: "Business Strategy Book", Price: 699, OriginalPrice: 999, Discount: 30, Rating: 4.5, Image: "https://images.pexels.com/photos/159751/book-address-book-learning-learn-159751.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Essential business strategies"},
	{ID: 50, Name: "Science Fiction Classics", Price: 899, OriginalPrice: 1499, Discount: 40, Rating: 4.8, Image: "https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Classic sci-fi collection"},
	{ID: 51, Name: "Art & Design Portfolio", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.6, Image: "https://images.pexels.com/photos/1266808/pexels-photo-1266808.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Inspiring art designs"},
	{ID: 52, Name: "History Encyclopedia", Price: 1999, OriginalPrice: 2999, Discount: 33, Rating: 4.7, Image: "https://images.pexels.com/photos/46274/pexels-photo-46274.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Books", Description: "Complete world history"},

	// Toys
	{ID: 53, Name: "Building Blocks Set", Price: 1499, OriginalPrice: 2499, Discount: 40, Rating: 4.8, Image: "https://images.pexels.com/photos/1148998/pexels-photo-1148998.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "500+ pieces building blocks"},
	{ID: 54, Name: "Remote Control Car", Price: 2999, OriginalPrice: 4999, Discount: 40, Rating: 4.7, Image: "https://images.pexels.com/photos/1040392/pexels-photo-1040392.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "High-speed RC car"},
	{ID: 55, Name: "Doll House Deluxe", Price: 3499, OriginalPrice: 5999, Discount: 42, Rating: 4.9, Image: "https://images.pexels.com/photos/8612982/pexels-photo-8612982.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Complete doll house set"},
	{ID: 56, Name: "Puzzle 1000 Pieces", Price: 699, OriginalPrice: 1199, Discount: 42, Rating: 4.5, Image: "https://images.pexels.com/photos/5691608/pexels-photo-5691608.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Challenging jigsaw puzzle"},
	{ID: 57, Name: "Board Games Collection", Price: 1999, OriginalPrice: 2999, Discount: 33, Rating: 4.6, Image: "https://images.pexels.com/photos/776654/pexels-photo-776654.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Family board games"},
	{ID: 58, Name: "Educational Robot", Price: 2499, OriginalPrice: 3999, Discount: 38, Rating: 4.8, Image: "https://images.pexels.com/photos/2085831/pexels-photo-2085831.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Learning robot for kids"},
	{ID: 59, Name: "Art & Craft Kit", Price: 999, OriginalPrice: 1699, Discount: 41, Rating: 4.7, Image: "https://images.pexels.com/photos/1762851/pexels-photo-1762851.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Complete art supplies"},
	{ID: 60, Name: "Musical Instruments Set", Price: 1799, OriginalPrice: 2999, Discount: 40, Rating: 4.6, Image: "https://images.pexels.com/photos/7520390/pexels-photo-7520390.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Toys", Description: "Kids musical instruments"},

	// Grocery
	{ID: 61, Name: "Organic Rice 10kg", Price: 899, OriginalPrice: 1199, Discount: 25, Rating: 4.6, Image: "https://images.pexels.com/photos/4022090/pexels-photo-4022090.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Premium organic rice"},
	{ID: 62, Name: "Cooking Oil Combo", Price: 799, OriginalPrice: 999, Discount: 20, Rating: 4.5, Image: "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Healthy cooking oils"},
	{ID: 63, Name: "Spices Gift Pack", Price: 699, OriginalPrice: 999, Discount: 30, Rating: 4.7, Image: "https://images.pexels.com/photos/4198933/pexels-photo-4198933.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Essential Indian spices"},
	{ID: 64, Name: "Dry Fruits Combo", Price: 1499, OriginalPrice: 1999, Discount: 25, Rating: 4.8, Image: "https://images.pexels.com/photos/1295572/pexels-photo-1295572.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Premium dry fruits mix"},
	{ID: 65, Name: "Tea & Coffee Pack", Price: 999, OriginalPrice: 1399, Discount: 29, Rating: 4.6, Image: "https://images.pexels.com/photos/1695052/pexels-photo-1695052.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Assorted tea and coffee"},
	{ID: 66, Name: "Breakfast Cereal Pack", Price: 599, OriginalPrice: 799, Discount: 25, Rating: 4.4, Image: "https://images.pexels.com/photos/1508666/pexels-photo-1508666.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Healthy breakfast cereals"},
	{ID: 67, Name: "Organic Honey 1kg", Price: 699, OriginalPrice: 999, Discount: 30, Rating: 4.9, Image: "https://images.pexels.com/photos/7937467/pexels-photo-7937467.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Pure organic honey"},
	{ID: 68, Name: "Pasta & Sauce Combo", Price: 499, OriginalPrice: 699, Discount: 29, Rating: 4.5, Image: "https://images.pexels.com/photos/1437267/pexels-photo-1437267.jpeg?auto=compress&cs=tinysrgb&w=400", Category: "Grocery", Description: "Italian pasta combo"},
}

// showcaseCategories is the fixed category order used on the home page.
var showcaseCategories = []string{
	"Electronics",
	"Fashion",
	"Beauty",
	"Home & Living",
	"Sports",
	"Books",
	"Toys",
	"Grocery",
}
