package blocktemplates

import "amma-cms/internal/domain/services"

var catalog = []Template{
	{
		Key:         "outdoor_advertising",
		Name:        "Outdoor Advertising Permit (Full)",
		Description: "Complete template for outdoor advertising permit service",
		Blocks: []services.BlockDraft{
			{
				BlockType: "text",
				Content:   "Purchase application form(s) from the Accounts Offices of Physical Planning Departments.",
				Order:     0,
			},
			{
				BlockType: "list",
				Title:     "Basic Requirements",
				Content:   "Application forms duly completed by applicant(s) should be submitted to the Physical Planning Department with the following attachments:",
				Data: data(`{"items":[
					"Receipt of payment (Application form(s))",
					"Company's certificate of incorporation/commencement of business",
					"Business Operating Permit (BOP)",
					"List of proposed locations and photo montage",
					"Architectural designs and structural drawings",
					"Evidence of insurance cover",
					"Written consent from property owner",
					"Geotechnical studies/investigation"
				]}`),
				Order: 1,
			},
			{
				BlockType: "steps",
				Title:     "Application Process",
				Content:   "The following step-by-step procedures apply to all outdoor advertisement applications:",
				Data: data(`{"steps":[
					{"title":"Submission","description":"On submission, an applicant pays a non-refundable application processing fee","list":["Corrections to be made (if any)","Date for site inspection"]},
					{"title":"Processing","description":"The Secretariat processes the application within 10 working days","list":[]},
					{"title":"Collection","description":"Applicant shall pay approved permit fee and annual renewal fees","list":[]}
				]}`),
				Order: 2,
			},
			{
				BlockType: "notice",
				Title:     "Note",
				Content:   "All fees (Submission, Approval and Annual Renewal fees) shall be determined based on the Assembly's Fee-Fixing Resolution.",
				Order:     3,
			},
		},
	},
	{
		Key:         "environmental_health",
		Name:        "Environmental Health Services",
		Description: "Service grid template for environmental health services",
		Blocks: []services.BlockDraft{
			{
				BlockType: "text",
				Content:   "Contemporary environmental health services promoting and protecting public health and safety through collaboration, innovation and strategic standard enforcement.",
				Order:     0,
			},
			{
				BlockType: "service_grid",
				Title:     "Available Services",
				Data: data(`{"items":[
					{"title":"Food Handlers' Certificate","description":"Food handlers medical screening conducted at sub-municipal laboratories.","list":["Process takes two (2) weeks","Only medically fit clients receive cards"]},
					{"title":"Hospitality Premises","description":"Comprehensive inspection and monitoring services","list":["Standard enforcement","Safety inspections","Sanitation monitoring","Pest control"]},
					{"title":"Industrial Premises","description":"Environmental monitoring and safety compliance","list":["Environmental monitoring","Pollution control","Health and safety standards"]}
				]}`),
				Order: 1,
			},
		},
	},
	{
		Key:         "waste_management",
		Name:        "Waste Management Services",
		Description: "Comprehensive waste management services template",
		Blocks: []services.BlockDraft{
			{
				BlockType: "text",
				Content:   "Services range from waste collection and disposal to public cleansing and advisory services. Services are rendered directly or outsourced to private service providers through franchise agreements.",
				Order:     0,
			},
			{
				BlockType: "service_grid",
				Title:     "Service Categories",
				Data: data(`{"items":[
					{"title":"Solid Waste Collection","description":"Mandatory subscription for all property owners and occupiers","list":["Register with accredited providers","Regular collection services","Domestic and commercial properties"]},
					{"title":"Special Waste Collection","description":"Specialized collection services for bulk and hazardous waste","list":["Bulk waste evacuation","Construction debris","E-Waste collection","Toxic waste handling"]},
					{"title":"Cleansing Services","description":"Public space maintenance and cleaning","list":["Street cleaning","Public space maintenance","Market cleaning","Drain cleaning"]}
				]}`),
				Order: 1,
			},
			{
				BlockType: "notice",
				Title:     "Important",
				Content:   "Standard service charges are published annually in the Municipal Fee Fixing Resolution.",
				Order:     2,
			},
		},
	},
	{
		Key:         "3_step_process",
		Name:        "3-Step Process",
		Description: "Simple 3-step process template",
		Blocks: []services.BlockDraft{
			{
				BlockType: "steps",
				Title:     "How to Apply",
				Data: data(`{"steps":[
					{"title":"Step 1","description":"Submit your application with required documents","list":[]},
					{"title":"Step 2","description":"Application review and processing","list":[]},
					{"title":"Step 3","description":"Collect your permit or certificate","list":[]}
				]}`),
				Order: 0,
			},
		},
	},
	{
		Key:         "requirements_list",
		Name:        "Requirements List",
		Description: "Simple bulleted requirements list",
		Blocks: []services.BlockDraft{
			{
				BlockType: "list",
				Title:     "Required Documents",
				Content:   "Please submit the following documents with your application:",
				Data: data(`{"items":[
					"Completed application form",
					"Valid identification",
					"Proof of address",
					"Payment receipt"
				]}`),
				Order: 0,
			},
		},
	},
	{
		Key:         "fees_table",
		Name:        "Fees Table",
		Description: "Standard fees and charges table",
		Blocks: []services.BlockDraft{
			{
				BlockType: "table",
				Title:     "Fees and Charges",
				Data: data(`{"headers":["Service","Fee (GHS)","Processing Time"],"rows":[
					["Application Fee","50.00","1-2 days"],
					["Permit Fee","200.00","5-7 days"],
					["Annual Renewal","100.00","3-5 days"]
				]}`),
				Order: 0,
			},
		},
	},
}
